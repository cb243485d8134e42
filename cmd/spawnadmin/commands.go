package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crafted-tech/spawnadmin"
)

func buildRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spawnadmin",
		Short: "Run commands and filesystem operations as the administrator.",
		Long: strings.TrimSpace(`
spawnadmin launches commands with administrator privileges and reports their
exit status. The OS shows its own elevation prompt: Authorization Services on
macOS, pkexec on Linux and UAC on Windows.

With --test-mode every command runs unprivileged, which is what the tests use.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.opts.ConfigPath, "config", "", "Path to YAML config file (default: ./spawnadmin.yaml if present).")
	cmd.PersistentFlags().BoolVar(&a.opts.TestMode, "test-mode", false, "Run commands without elevation.")
	cmd.PersistentFlags().StringVar(&a.opts.LogDir, "log", "", "Write a session log file into this directory (\"auto\" = per-user log directory).")
	cmd.PersistentFlags().StringVar(&a.opts.LogFile, "log-file", "", "Append the session log to this file (overrides --log).")
	cmd.PersistentFlags().BoolVar(&a.opts.Metrics, "metrics", false, "Print Prometheus metrics to stderr on exit.")

	cmd.AddCommand(
		buildRunCmd(a),
		buildSymlinkCmd(a),
		buildUnlinkCmd(a),
		buildMkdirCmd(a),
		buildCopyCmd(a),
		buildWriteCmd(a),
		buildAuthFormCmd(a),
		buildClearAuthCmd(a),
	)
	return cmd
}

func buildRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a command as administrator and exit with its status",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := spawnadmin.Start(spawnadmin.NewCommand(args[0], args[1:]...), a.sessionOptions(cmd.OutOrStdout())...)
			if err != nil {
				return err
			}

			code, err := res.Wait(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exit code: %d\n", code)
			a.exitCode = int(code)
			if code == spawnadmin.ExitUnknown {
				a.exitCode = 1
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func buildSymlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symlink <target> <path>",
		Short: "Create a symbolic link at path pointing to target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.admin.Symlink(cmd.Context(), args[0], args[1])
		},
	}
}

func buildUnlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <path>",
		Short: "Remove a file or directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.admin.Unlink(cmd.Context(), args[0])
		},
	}
}

func buildMkdirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <dir>",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.admin.MakeTree(cmd.Context(), args[0])
		},
	}
}

func buildCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Replace dst with a copy of src",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.admin.RecursiveCopy(cmd.Context(), args[0], args[1])
		},
	}
}

func buildWriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write <path>",
		Short: "Write standard input to path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.admin.CreateWriteStream(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if _, err := io.Copy(w, cmd.InOrStdin()); err != nil {
				w.Close()
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			return w.Close()
		},
	}
}

func buildAuthFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "auth-form",
		Short: "Print the cached authorization credential in hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := spawnadmin.GetAuthorizationForm()
			if len(form) == 0 {
				return spawnadmin.ErrNoAuthorization
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(form))
			return nil
		},
	}
}

func buildClearAuthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-auth",
		Short: "Drop the cached authorization credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spawnadmin.ClearAuthorizationCache()
			a.log.Info("Authorization cache cleared")
			return nil
		},
	}
}
