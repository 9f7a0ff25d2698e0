package delay

import "log/slog"

type Option interface{ apply(*config) }

type optFunc func(*config)

func (f optFunc) apply(c *config) { f(c) }

type config struct {
	immediate  bool
	logger     *slog.Logger
	firstToken Token
}

func newConfig(opts []Option) config {
	c := config{
		immediate:  true,
		logger:     slog.Default(),
		firstToken: 1,
	}
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}

// WithImmediate enables/disables evaluating a condition at registration time.
// When disabled, a registration always waits for the next pass-through action.
func WithImmediate(enabled bool) Option {
	return optFunc(func(c *config) { c.immediate = enabled })
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return optFunc(func(c *config) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithFirstToken sets the first token handed out.
func WithFirstToken(t Token) Option { return optFunc(func(c *config) { c.firstToken = t }) }
