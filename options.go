package termtrack

import (
	"io"
	"time"

	"golang.org/x/exp/slog"
)

// DefaultPollInterval is the pause between two key reads of a Capture
const DefaultPollInterval = 10 * time.Millisecond

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

type Options struct {
	// Logger is an optional slog.Logger that termtrack will log to.
	// termtrack uses stdlib levels for logging
	Logger *slog.Logger
	// PollInterval is the time input capture sleeps between reads. Default
	// is DefaultPollInterval
	PollInterval time.Duration
}
