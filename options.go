package zframe

import "github.com/miretskiy/zframe/zstd"

// config holds per-call settings
type config struct {
	engine    zstd.Engine
	sizeLimit uint64
}

// newConfig returns the defaults with opts applied.
func newConfig(opts []Option) config {
	c := config{
		engine:    defaultEngine(),
		sizeLimit: DefaultSizeLimit,
	}
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}

// Option configures a decompression call
type Option interface {
	apply(*config)
}

// funcOpt wraps a function as an Option
type funcOpt func(*config)

func (f funcOpt) apply(c *config) {
	f(c)
}

// WithEngine substitutes the codec engine for this call. The default is the
// libzstd binding on cgo builds and the pure-Go engine otherwise.
func WithEngine(e zstd.Engine) Option {
	return funcOpt(func(c *config) {
		c.engine = e
	})
}

// WithSizeLimit overrides the ceiling applied when a frame does not declare
// its content size (default: 1 GiB)
func WithSizeLimit(n uint64) Option {
	return funcOpt(func(c *config) {
		c.sizeLimit = n
	})
}
