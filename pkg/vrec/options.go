package vrec

import "log/slog"

// Option configures a Root.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	observers []Observer
	keyed     bool
	loop      *Loop
}

func defaultOptions() options {
	return options{logger: newNopLogger()}
}

// WithLogger sets the logger used by the runtime. The runtime is silent by
// default; render passes and batch flushes are logged at Debug and updates
// on unmounted components at Warn.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = newNopLogger()
		}
		o.logger = logger
	}
}

// WithObserver adds an Observer. May be given more than once.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithKeyedChildren enables key-based matching of host children. Without
// it children are matched by position and keys are ignored.
func WithKeyedChildren() Option {
	return func(o *options) {
		o.keyed = true
	}
}

// WithLoop drives effects and timers on an existing Loop instead of a
// fresh one.
func WithLoop(l *Loop) Option {
	return func(o *options) {
		o.loop = l
	}
}
