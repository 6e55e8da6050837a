package ecdsa

import "github.com/smallyu/go-ecdsa/internal/crypto/curves"

// Curve holds the domain parameters of a short Weierstrass curve.
type Curve = curves.Curve

// Point is an affine curve point or the point at infinity.
type Point = curves.Point

// CurveByName returns a registered curve by case-insensitive name, e.g.
// "secp256k1", "prime256v1" or "p256".
func CurveByName(name string) (*Curve, error) {
	return curves.ByName(name)
}

// CurveByOID returns a registered curve by object identifier.
func CurveByOID(oid []int) (*Curve, error) {
	return curves.ByOID(oid)
}

// SupportedCurves returns every registered curve.
func SupportedCurves() []*Curve {
	return curves.Supported()
}

// Secp256k1 returns the secp256k1 curve, the default for key generation.
func Secp256k1() *Curve {
	return curves.Secp256k1()
}

// Prime256v1 returns the NIST P-256 curve.
func Prime256v1() *Curve {
	return curves.Prime256v1()
}

// Secp384r1 returns the NIST P-384 curve.
func Secp384r1() *Curve {
	return curves.Secp384r1()
}

// Secp521r1 returns the NIST P-521 curve.
func Secp521r1() *Curve {
	return curves.Secp521r1()
}
