// SPDX-License-Identifier: MIT

package feeder

import (
	"io"
	"log/slog"
	"runtime"
)

// Option configures Contingency and PlaceEVs.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	concurrency int
	seed        int64
}

func buildOptions(opts []Option) options {
	o := options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency caps how many line outages Contingency evaluates at once.
// Values below 1 are ignored; the default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithSeed fixes the random source used by PlaceEVs. The default seed is 0.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
