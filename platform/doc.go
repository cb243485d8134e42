// Package platform launches commands with elevated privileges and waits for
// them to exit.
//
// Supported platforms are macOS, Windows and Linux. Building for anything
// else fails at compile time (see unsupported.go).
//
// # Pieces
//
//   - Quoting: QuoteArg and JoinArgs build a Windows command line from an
//     argument vector (pure functions, available everywhere)
//   - Authorization: a process-wide AuthorizationCache holding the macOS
//     Authorization Services credential
//   - Launch: Start runs a Command elevated (or, in test mode, as a plain
//     child) and returns a Handle
//   - Wait: Wait consumes a Handle, blocks until the child exits and returns
//     its ExitCode
//   - Paths: UserConfigPath and UserLogsPath locate the per-user settings
//     and session log directories
//
// # Example Usage
//
//	h, err := platform.Start(platform.Command{Path: "/bin/mkdir", Args: []string{"-p", dir}}, false)
//	if err != nil {
//	    return err
//	}
//	code := platform.Wait(h, os.Stdout)
//	if code != 0 {
//	    return fmt.Errorf("mkdir exited with %d", code)
//	}
//
// Handles are single-use. Wait blocks for as long as the child runs; run it
// on its own goroutine when the caller must stay responsive.
package platform
