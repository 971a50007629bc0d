package internal

import "go.uber.org/zap"

// The super-triangle's vertices sit this many bounding box sizes away from the
// centre of the box. Anything from 3 up strictly encloses the box; larger
// values lose fewer convex hull triangles to the perimeter cleanup.
const DefaultSuperTriangleScale = 20

const minSuperTriangleScale = 3

type options struct {
	logger             *zap.Logger
	superTriangleScale float64
}

type Option func(*options)

// Log engine progress to the given logger. The default logger discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithSuperTriangleScale(scale float64) Option {
	return func(o *options) {
		o.superTriangleScale = scale
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:             zap.NewNop(),
		superTriangleScale: DefaultSuperTriangleScale,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.superTriangleScale >= minSuperTriangleScale) {
		fatal(ErrInvalidOption, "super-triangle scale %v is below %v", o.superTriangleScale, minSuperTriangleScale)
	}
	return o
}
