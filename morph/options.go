package morph

import "github.com/katalvlaran/binmorph/neighbors"

// Options collects the tunable parameters of the morphological operations.
// Each operation starts from its own documented defaults and consumes only
// the fields that are meaningful for it; the rest are ignored.
type Options struct {
	// Connectivity defines the neighborhood, as interpreted by the
	// neighbors package: 1..dimensionality, neighbors.Full, or one of the
	// alternation sentinels in 2-D and 3-D.
	Connectivity int

	// Iterations is the number of propagation steps. Zero means "no work"
	// for the basic operations and "iterate to convergence" for
	// Propagation and the 2-D thinning/thickening operations.
	Iterations int

	// Edge is the boundary condition applied outside the image.
	Edge EdgeCondition

	// EndPixel controls end pixel handling in ConditionalThinning2D and
	// ConditionalThickening2D.
	EndPixel EndPixelCondition

	// Mode selects the pixels CountNeighbors reports on.
	Mode CountMode

	// Workers caps the goroutines used by the pixel-parallel operations
	// (CountNeighbors, MajorityVote). Values below one mean sequential.
	Workers int
}

// Option mutates an Options value before an operation runs.
type Option func(*Options)

// WithConnectivity sets the neighborhood connectivity.
func WithConnectivity(c int) Option {
	return func(o *Options) { o.Connectivity = c }
}

// WithIterations sets the number of propagation steps.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithEdge sets the boundary condition.
func WithEdge(e EdgeCondition) Option {
	return func(o *Options) { o.Edge = e }
}

// WithEndPixel sets the end pixel condition for the 2-D thinning and
// thickening operations.
func WithEndPixel(ep EndPixelCondition) Option {
	return func(o *Options) { o.EndPixel = ep }
}

// WithMode sets the counting mode for CountNeighbors.
func WithMode(m CountMode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithWorkers caps the goroutines used by the pixel-parallel operations.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func dilationDefaults() Options {
	return Options{Connectivity: neighbors.AlternateLow, Iterations: 3, Edge: EdgeBackground}
}

func erosionDefaults() Options {
	return Options{Connectivity: neighbors.AlternateLow, Iterations: 3, Edge: EdgeObject}
}

func openingDefaults() Options {
	return Options{Connectivity: neighbors.AlternateLow, Iterations: 3, Edge: EdgeSpecial}
}

func closingDefaults() Options {
	return Options{Connectivity: neighbors.AlternateLow, Iterations: 3, Edge: EdgeSpecial}
}

func propagationDefaults() Options {
	return Options{Connectivity: 1, Iterations: 0, Edge: EdgeBackground}
}

func edgeObjectsDefaults() Options {
	return Options{Connectivity: 1}
}

func thinning2DDefaults() Options {
	return Options{Iterations: 0, Edge: EdgeBackground, EndPixel: EndPixelLose}
}

func countDefaults() Options {
	return Options{Connectivity: neighbors.Full, Edge: EdgeBackground, Mode: CountForeground, Workers: 1}
}

func majorityDefaults() Options {
	return Options{Connectivity: neighbors.Full, Edge: EdgeBackground, Workers: 1}
}

func buildOptions(defaults Options, opts []Option) Options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
