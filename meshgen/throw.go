package meshgen

import "github.com/pkg/errors"

// Threading errors up through every split and clip in the generation
// pipeline would add a ton of noise to the code. Instead the pipeline panics
// with a geometryError and the API boundary recovers it, so a failed run
// aborts atomically and the mesh keeps its prior state.

type geometryError struct{ error }

// throwf panics with the sentinel wrapped in context. Recovered by
// recoverGeometryError at the GenerateMesh boundary.
func throwf(sentinel error, format string, args ...interface{}) {
	panic(geometryError{errors.Wrapf(sentinel, format, args...)})
}

// recoverGeometryError converts a recovered geometryError back into an
// error. Any other panic is re-raised; those are programming errors, not
// geometry failures.
func recoverGeometryError(r interface{}) error {
	if r == nil {
		return nil
	}
	if ge, ok := r.(geometryError); ok {
		return ge.error
	}
	panic(r)
}
