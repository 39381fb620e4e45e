package core

import (
	"time"
)

// Option defines a functional option for configuring a Library.
type Option func(*Library)

// WithLogger sets the logger for the Library.
//
// Info level: inventory, shelf and reader changes
// Warn level: rejected operations.
func WithLogger(logger Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// WithRecorder sets the Recorder which receives a DomainEvent for every change.
func WithRecorder(recorder Recorder) Option {
	return func(l *Library) {
		l.recorder = recorder
	}
}

// WithLendingLimit overrides LendingLimit. Values below 1 are ignored.
func WithLendingLimit(limit int) Option {
	return func(l *Library) {
		if limit > 0 {
			l.lendingLimit = limit
		}
	}
}

// WithClock sets the time source for domain events.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}
