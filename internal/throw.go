package internal

import "github.com/pkg/errors"

// Threading errors through every graph mutation and state transition would
// add a ton of noise to the incremental update code. Instead, we panic with an
// error, and every public entry point recovers and converts it back into a
// returned error.

var (
	ErrNoSeeds       = errors.New("no seeds to triangulate")
	ErrInvalidBounds = errors.New("width and height must be positive")
	ErrComplete      = errors.New("diagram is already complete")
	ErrNotCleanedUp  = errors.New("triangulation has not been cleaned up")
	ErrIncomplete    = errors.New("diagram is not complete yet")
	ErrInvalidOption = errors.New("invalid option")
	ErrInvariant     = errors.New("triangulation invariant violated")
)

// Marks a panic as one of ours. Runtime errors also satisfy error, so a bare
// error type is not enough to tell them apart.
type VoronoiError struct {
	Err error
}

// Panic with a VoronoiError wrapping ErrInvariant.
func fatalf(format string, args ...interface{}) {
	panic(VoronoiError{errors.Wrapf(ErrInvariant, format, args...)})
}

// Panic with a VoronoiError wrapping one of the precondition errors.
func fatal(err error, format string, args ...interface{}) {
	panic(VoronoiError{errors.Wrapf(err, format, args...)})
}

func HandleVoronoiPanicRecover(r interface{}) error {
	if r != nil {
		if voronoiError, ok := r.(VoronoiError); ok {
			return voronoiError.Err
		}
		panic(r)
	}
	return nil
}
