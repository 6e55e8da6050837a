package ecdsa

import (
	"encoding/hex"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/errs"
)

// uncompressedPrefix marks an uncompressed SEC 1 point encoding.
const uncompressedPrefix = 0x04

// fixedBytes returns x as a big-endian value left-padded to size bytes.
func fixedBytes(x *big.Int, size int) []byte {
	return x.FillBytes(make([]byte, size))
}

// pointBytes returns x || y, each coordinate padded to the curve length.
func pointBytes(p curves.Point, curve *curves.Curve) []byte {
	size := curve.Length()
	out := make([]byte, 2*size)
	p.X.FillBytes(out[:size])
	p.Y.FillBytes(out[size:])
	return out
}

// uncompressedPoint returns 0x04 || x || y.
func uncompressedPoint(p curves.Point, curve *curves.Curve) []byte {
	return append([]byte{uncompressedPrefix}, pointBytes(p, curve)...)
}

// parsePoint splits x || y and validates the point against the curve.
func parsePoint(b []byte, curve *curves.Curve) (curves.Point, error) {
	size := curve.Length()
	if len(b) != 2*size {
		return curves.Point{}, errs.Newf(errs.ErrDecode,
			"ecdsa: point for curve %s must be %d bytes, got %d", curve.Name, 2*size, len(b))
	}

	p := curves.NewPoint(new(big.Int).SetBytes(b[:size]), new(big.Int).SetBytes(b[size:]))
	if !curve.Contains(p) {
		return curves.Point{}, errs.Newf(errs.ErrInvalidPoint,
			"ecdsa: point (%x, %x) is not valid for curve %s", p.X, p.Y, curve.Name)
	}
	return p, nil
}

// parseUncompressedPoint drops the 0x04 format byte and parses the rest.
func parseUncompressedPoint(b []byte, curve *curves.Curve) (curves.Point, error) {
	if len(b) == 0 {
		return curves.Point{}, errs.New(errs.ErrDecode, "ecdsa: empty point encoding")
	}
	if b[0] != uncompressedPrefix {
		return curves.Point{}, errs.Newf(errs.ErrDecode,
			"ecdsa: unsupported point format 0x%02x, only uncompressed points are accepted", b[0])
	}
	return parsePoint(b[1:], curve)
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errs.Newf(errs.ErrDecode, "ecdsa: invalid hex: %v", err)
	}
	return b, nil
}

func trailingJunk(what string, rest []byte) error {
	return errs.Newf(errs.ErrDecode, "ecdsa: trailing junk after %s: %x", what, rest)
}

// curveOrDefault returns the default curve for nil.
func curveOrDefault(curve *curves.Curve) *curves.Curve {
	if curve == nil {
		return curves.Default()
	}
	return curve
}
