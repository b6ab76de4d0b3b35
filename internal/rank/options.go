package rank

import "github.com/born-ml/ndrank/internal/parallel"

// Option configures the axis variants.
type Option func(*options)

type options struct {
	parallel parallel.Config
}

// WithParallel runs per-slice work with the given parallel configuration.
// Results are identical to sequential execution.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

func buildOptions(opts []Option) options {
	o := options{parallel: parallel.Sequential()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
