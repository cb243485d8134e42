/*
Package spawnadmin runs a command with administrator (root) privileges and
reports its exit code asynchronously.

On macOS the command runs through Authorization Services with a cached
credential, on Windows through ShellExecuteEx with the "runas" verb (the UAC
consent prompt), and on Linux through pkexec. Test mode skips elevation and
spawns the command as an ordinary child so the launch and wait machinery can
be exercised in automated tests.

# Basic Usage

Start a command and wait for it:

	res, err := spawnadmin.Start(spawnadmin.NewCommand("/bin/mkdir", "-p", dir))
	if err != nil {
		return err // could not start (prompt declined, executable missing, ...)
	}
	code, err := res.Wait(ctx)
	if err != nil {
		return err // ctx ended; the child keeps running
	}
	if code != 0 {
		return fmt.Errorf("mkdir exited with %d", code)
	}

Or use the callback form:

	ok := spawnadmin.SpawnAsAdmin("/bin/rm", []string{"-rf", path}, false, func(code int) {
		log.Printf("rm exited with %d", code)
	})
	if !ok {
		// nothing was started and the callback will not run
	}

# Exit Codes

A started command always produces exactly one exit code. ExitUnknown (-1)
means the status could not be determined and must not be read as success or
failure of the command itself.

# Cancellation

There is none. Once launched, a privileged child runs to completion. A
context passed to Result.Wait only stops the caller from waiting.

# Authorization

GetAuthorizationForm returns the serialized macOS credential for hand-off to
tools such as authopen; ClearAuthorizationCache drops it so the next launch
prompts again. Both are no-ops returning empty results on other platforms.
*/
package spawnadmin
