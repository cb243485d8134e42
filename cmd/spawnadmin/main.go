// Command spawnadmin runs commands and filesystem operations with
// administrator privileges.
//
// Usage:
//
//	spawnadmin run /usr/sbin/installer -pkg App.pkg -target /
//	spawnadmin copy ./build /Applications/App.app
//	echo '127.0.0.1 dev.local' | spawnadmin write /etc/hosts
//	spawnadmin --test-mode --metrics run /bin/sh -c 'exit 3'
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	cmd := buildRootCmd(a)
	if err := executeRoot(ctx, a, cmd); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return a.exitCode
}

// executeRoot runs cmd and then releases what setup acquired, whether or not
// the subcommand succeeded.
func executeRoot(ctx context.Context, a *app, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if terr := a.teardown(cmd.ErrOrStderr()); err == nil {
		err = terr
	}
	return err
}
