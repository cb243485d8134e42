package platform

import (
	"errors"
	"strings"
)

var (
	// ErrElevationDeclined indicates the user rejected the elevation prompt.
	ErrElevationDeclined = errors.New("administrator elevation declined")

	// ErrElevationUnavailable indicates the platform has no usable elevation
	// facility (for example pkexec is not installed).
	ErrElevationUnavailable = errors.New("administrator elevation unavailable")

	// ErrNoAuthorization is returned by authorization caches on platforms
	// without an authorization credential concept.
	ErrNoAuthorization = errors.New("authorization not supported on this platform")

	// ErrEmptyCommand is returned when a Command has no executable path.
	ErrEmptyCommand = errors.New("command path is empty")
)

// ExitCode is the status a child process reported. Non-negative values come
// from the child; ExitUnknown means the status could not be determined.
type ExitCode int

// ExitUnknown is reported when waiting for the child or querying its status
// failed. It is distinct from any real exit status.
const ExitUnknown ExitCode = -1

// Known reports whether the code came from the child itself.
func (c ExitCode) Known() bool {
	return c >= 0
}

// Command is an executable plus its arguments. Both must be fully resolved:
// nothing here expands variables or globs.
type Command struct {
	Path string   // Executable path or name (looked up in PATH for direct launches)
	Args []string // Arguments, not including the executable itself
}

// String renders the command for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}
