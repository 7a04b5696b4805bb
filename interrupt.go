package termtrack

import (
	"context"
	"errors"
	"os"
	"os/signal"
)

// ErrInterrupted reports that an operation stopped because the user
// interrupted the program
var ErrInterrupted = errors.New("termtrack: interrupted")

// Graceful runs fn, turning a user interrupt into a clean return. fn receives
// a context which is cancelled when the process receives os.Interrupt. If fn
// fails with ErrInterrupted, or with a cancellation caused by the interrupt,
// Graceful returns nil. Any other error is returned unchanged.
//
// While fn runs, os.Interrupt no longer terminates the process: fn is
// expected to watch ctx
func Graceful(fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := fn(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInterrupted):
		log.Debug("interrupted")
		return nil
	case ctx.Err() != nil && errors.Is(err, context.Canceled):
		log.Debug("interrupted", "signal", os.Interrupt)
		return nil
	}
	return err
}
