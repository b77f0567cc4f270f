// Package throw carries invariant failures out of deeply recursive geometry
// code.
//
// Threading errors up and down every topology mutation of the wavefront
// simulation would add a ton of complexity to the code. Instead, invariant
// violations panic with an Error, and the public API recovers to convert the
// panic back into an ordinary error.
package throw

import "github.com/pkg/errors"

// ErrInvariant is the cause of every Error raised by Fatalf.
var ErrInvariant = errors.New("invariant violated")

// Error is the panic value used by Fatalf. Panics carrying anything else are
// real bugs and are re-raised by HandlePanicRecover.
type Error struct {
	err error
}

func (e Error) Error() string { return e.err.Error() }
func (e Error) Cause() error  { return e.err }
func (e Error) Unwrap() error { return e.err }

// Panic with an Error wrapping ErrInvariant.
func Fatalf(format string, args ...interface{}) {
	panic(Error{errors.Wrapf(ErrInvariant, format, args...)})
}

// Panic with an Error wrapping an existing error, keeping it as the cause.
func Fatal(err error, message string) {
	panic(Error{errors.Wrap(err, message)})
}

// Convert a recovered Error into an error. Nil stays nil, and any other panic
// value is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if thrown, ok := r.(Error); ok {
			return thrown.err
		}
		panic(r)
	}
	return nil
}
