package hitmiss

// Options collects the tunable parameters of the hit-or-miss operations.
// Every operation starts from the same defaults: background padding, run to
// convergence, sequential execution.
type Options struct {
	// Boundary selects the padding policy. The zero value extends the
	// input with background by the kernel radius; AlreadyExpanded trusts
	// the caller's own padding and shrinks the output accordingly.
	Boundary BoundaryMode

	// Iterations bounds the number of full passes Thinning and Thickening
	// make over their interval array. Zero means iterate until a full pass
	// changes nothing.
	Iterations int

	// Workers caps the goroutines used per pass. Values below one mean
	// sequential.
	Workers int
}

// Option mutates an Options value before an operation runs.
type Option func(*Options)

// WithBoundary sets the padding policy.
func WithBoundary(b BoundaryMode) Option {
	return func(o *Options) { o.Boundary = b }
}

// WithIterations bounds the number of full passes of Thinning and
// Thickening.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithWorkers caps the goroutines used per pass.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func defaultOptions() Options {
	return Options{Iterations: 0, Workers: 1}
}

func buildOptions(defaults Options, opts []Option) Options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
