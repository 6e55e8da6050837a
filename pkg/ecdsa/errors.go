package ecdsa

import "github.com/smallyu/go-ecdsa/internal/errs"

// ErrorKind identifies a kind of error. See the errs package for the
// meaning of each kind.
type ErrorKind = errs.ErrorKind

// Error is the error type returned by every operation in this package.
type Error = errs.Error

// Error kinds returned by this package.
const (
	ErrDecode           = errs.ErrDecode
	ErrUnsupportedCurve = errs.ErrUnsupportedCurve
	ErrInvalidPoint     = errs.ErrInvalidPoint
	ErrInvalidArgument  = errs.ErrInvalidArgument
	ErrRandomness       = errs.ErrRandomness
)
