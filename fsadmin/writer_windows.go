//go:build windows

package fsadmin

import (
	"context"
	"io"
)

// CreateWriteStream is not supported on Windows.
func (a *Admin) CreateWriteStream(ctx context.Context, path string) (io.WriteCloser, error) {
	return nil, ErrUnsupported
}
