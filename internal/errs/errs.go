// Package errs defines the error kinds shared by the field, curve, DER and
// key codecs.
//
// Every error produced by those packages is an Error whose Err field is one
// of the ErrorKind constants below, so callers can classify failures with
// errors.Is without parsing messages:
//
//	if errors.Is(err, errs.ErrDecode) {
//		// malformed input
//	}
package errs

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrDecode is returned when binary or text input is structurally
	// malformed: an unexpected DER tag, a length that overruns the buffer,
	// trailing bytes after a complete value, or a missing PEM marker.
	ErrDecode = ErrorKind("ErrDecode")

	// ErrUnsupportedCurve is returned when a curve name or OID is not present
	// in the curve registry.
	ErrUnsupportedCurve = ErrorKind("ErrUnsupportedCurve")

	// ErrInvalidPoint is returned when a decoded point does not satisfy the
	// curve equation or does not match the point derived from a secret.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidArgument is returned when an encoder or constructor is given
	// a value it cannot represent, such as a negative integer or an OID arc
	// outside the permitted range.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrNotInvertible is returned when a modular inverse does not exist.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")

	// ErrRandomness is returned when the random source fails.
	ErrRandomness = ErrorKind("ErrRandomness")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to keys, points, signatures or their
// encodings.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New creates an Error given a kind and a description.
func New(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Newf creates an Error given a kind and a format string.
func Newf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}
