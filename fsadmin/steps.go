package fsadmin

import "context"

// RunSteps executes steps in order and returns the first error.
// It returns ErrCancelled if ctx ends before a step starts; a step already
// running is not interrupted. If log is nil, no logging is performed.
func RunSteps(ctx context.Context, steps []Step, log *Logger) error {
	for _, step := range steps {
		if ctx.Err() != nil {
			log.Warn("Cancelled before '%s'", step.Name)
			return ErrCancelled
		}

		log.Step("Starting: %s", step.Name)

		result := step.Action(ctx)

		if result.Err != nil {
			log.Error("Step '%s' failed: %v", step.Name, result.Err)
			return result.Err
		}

		switch {
		case result.Skip && result.Info != "":
			log.Info("Step '%s' skipped: %s", step.Name, result.Info)
		case result.Skip:
			log.Info("Step '%s' skipped", step.Name)
		case result.Info != "":
			log.Info("Step '%s' completed: %s", step.Name, result.Info)
		default:
			log.Info("Step '%s' completed", step.Name)
		}
	}
	return nil
}
