package flatbush

import "log/slog"

const defaultNodeSize = 16

type options struct {
	nodeSize int
	capacity int
	logger   *slog.Logger
}

// Option configures a Flatbush at construction.
type Option func(*options)

// WithNodeSize sets the maximum number of children per tree node.
// Values below 2 are raised to 2 when the index is finished.
func WithNodeSize(n int) Option {
	return func(o *options) {
		o.nodeSize = n
	}
}

// WithCapacity reserves room for n items, the same as calling Reserve.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used while building the index.
// Searches never log. If nil is passed, log output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{nodeSize: defaultNodeSize}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}
	return o
}
