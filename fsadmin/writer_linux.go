//go:build linux

package fsadmin

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/crafted-tech/spawnadmin"
)

// CreateWriteStream opens path for writing as the administrator. Data
// written to the stream replaces the file's contents; Close reports whether
// the write succeeded.
//
// The writer is dd, run through pkexec unless the process is already root.
// Test mode runs dd directly.
func (a *Admin) CreateWriteStream(ctx context.Context, path string) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args := []string{"of=" + path, "status=none"}
	if a.TestMode || spawnadmin.IsElevated() {
		return startWriter("dd", exec.Command("/bin/dd", args...), nil, a.Logger)
	}

	pkexec, err := exec.LookPath("pkexec")
	if err != nil {
		return nil, fmt.Errorf("%w: pkexec not found", spawnadmin.ErrElevationUnavailable)
	}
	cmd := exec.Command(pkexec, append([]string{"/bin/dd"}, args...)...)
	return startWriter("dd", cmd, nil, a.Logger)
}
