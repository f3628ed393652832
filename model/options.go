package model

// Option configures a Grid at construction.
type Option func(*options)

type options struct {
	bits      BitSource
	pool      *StatePool
	parallel  bool
	bounded   bool
	randomize bool
}

func defaultOptions() options {
	return options{
		bits:      globalSource{},
		randomize: true,
	}
}

// WithBitSource sets the random source used by Randomize.
func WithBitSource(bits BitSource) Option {
	return func(o *options) {
		if bits != nil {
			o.bits = bits
		}
	}
}

// WithSeed makes Randomize reproducible by using a PCG source seeded with seed.
func WithSeed(seed int64) Option {
	return WithBitSource(NewSeededSource(seed))
}

// WithParallel computes next states on row bands across all CPUs.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithBounded limits next-state computation to the bounding box of living
// cells plus a one-cell margin. It takes precedence over WithParallel.
func WithBounded(bounded bool) Option {
	return func(o *options) {
		o.bounded = bounded
	}
}

// WithPool reuses staging buffers from pool. A nil pool allocates per step.
func WithPool(pool *StatePool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithoutRandomize leaves every cell Dead after construction.
func WithoutRandomize() Option {
	return func(o *options) {
		o.randomize = false
	}
}
