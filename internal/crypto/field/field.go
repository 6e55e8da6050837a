// Package field implements arithmetic modulo an arbitrary prime.
//
// Every function allocates and returns a new value normalized into [0, p);
// the inputs are never modified, so values may be shared freely between
// goroutines.
package field

import (
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/errs"
)

// Mod returns a mod p in the range [0, p).
func Mod(a, p *big.Int) *big.Int {
	// big.Int.Mod implements Euclidean modulus, so the result is never
	// negative for a positive modulus.
	return new(big.Int).Mod(a, p)
}

// Add returns (a + b) mod p.
func Add(a, b, p *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, p)
}

// Sub returns (a - b) mod p.
func Sub(a, b, p *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, p)
}

// Mul returns (a * b) mod p.
func Mul(a, b, p *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, p)
}

// Square returns a² mod p.
func Square(a, p *big.Int) *big.Int {
	return Mul(a, a, p)
}

// Inverse returns x such that a*x ≡ 1 (mod p), computed with the extended
// Euclidean algorithm. It fails with ErrNotInvertible when gcd(a, p) ≠ 1,
// which for a prime modulus only happens when a ≡ 0.
func Inverse(a, p *big.Int) (*big.Int, error) {
	if p.Sign() <= 0 {
		return nil, errs.Newf(errs.ErrInvalidArgument, "modulus must be positive, got %s", p)
	}

	r := Mod(a, p)
	if r.Sign() == 0 {
		return nil, errs.Newf(errs.ErrNotInvertible, "0 has no inverse modulo %s", p)
	}

	// GCD fills x with the Bezout coefficient: r*x + p*y = gcd(r, p).
	x := new(big.Int)
	gcd := new(big.Int).GCD(x, nil, r, p)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, errs.Newf(errs.ErrNotInvertible, "%s is not invertible modulo %s (gcd %s)", r, p, gcd)
	}

	return x.Mod(x, p), nil
}

// Div returns a * b⁻¹ mod p.
func Div(a, b, p *big.Int) (*big.Int, error) {
	inv, err := Inverse(b, p)
	if err != nil {
		return nil, err
	}
	return Mul(a, inv, p), nil
}
