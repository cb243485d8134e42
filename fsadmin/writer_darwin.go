//go:build darwin

package fsadmin

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/crafted-tech/spawnadmin"
)

const authopenPath = "/usr/libexec/authopen"

// CreateWriteStream opens path for writing as the administrator. Data
// written to the stream replaces the file's contents; Close reports whether
// the write succeeded.
//
// Credentials are obtained first by running /bin/echo elevated, so
// concurrent callers get one prompt rather than several. The actual writer
// is authopen, which receives the cached authorization on stdin. Test mode
// writes with dd instead.
func (a *Admin) CreateWriteStream(ctx context.Context, path string) (io.WriteCloser, error) {
	probe := &Admin{TestMode: a.TestMode, Logger: a.Logger, Metrics: a.Metrics}
	if err := probe.run(ctx, "echo", spawnadmin.NewCommand("/bin/echo")); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentials, err)
	}

	if a.TestMode {
		return startWriter("dd", exec.Command("/bin/dd", "of="+path), nil, a.Logger)
	}

	form := spawnadmin.GetAuthorizationForm()
	if len(form) == 0 {
		return nil, ErrCredentials
	}
	cmd := exec.Command(authopenPath, "-extauth", "-w", "-c", path)
	return startWriter("authopen", cmd, form, a.Logger)
}
