package curves

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-ecdsa/internal/errs"
)

// Curve holds the domain parameters of a short Weierstrass curve
// y² = x³ + a·x + b over the prime field of order P, together with the base
// point G of prime order N.
//
// Curves are shared by reference and must not be modified after
// construction; all methods are safe for concurrent use.
type Curve struct {
	Name string
	P    *big.Int // field prime
	A    *big.Int // linear coefficient
	B    *big.Int // constant coefficient
	G    Point    // generator
	N    *big.Int // order of G
	OID  []int    // named curve object identifier
}

// Length returns the number of bytes needed to hold a scalar modulo N, which
// is also the width of each coordinate in the fixed-size encodings.
func (c *Curve) Length() int {
	return (c.N.BitLen() + 7) / 8
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + a·x + b (mod P).
// The point at infinity is not on the curve in this sense.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return false
	}
	lhs := field.Square(p.Y, c.P)
	return lhs.Cmp(c.polynomial(p.X)) == 0
}

// Contains validates a point received from outside the library: both
// coordinates must be reduced field elements and the point must lie on the
// curve. Every public key import goes through this check.
func (c *Curve) Contains(p Point) bool {
	if p.IsInfinity() {
		return false
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}
	return c.IsOnCurve(p)
}

// polynomial returns x³ + a·x + b mod P.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Add(r, c.A) // x² + a
	r.Mul(r, x)   // x³ + ax
	r.Add(r, c.B) // x³ + ax + b
	return r.Mod(r, c.P)
}

// RandomScalar draws a uniform integer in [1, N-1] from random.
func (c *Curve) RandomScalar(random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}

	// Draw from [0, N-2] and shift by one.
	max := new(big.Int).Sub(c.N, big.NewInt(1))
	k, err := rand.Int(random, max)
	if err != nil {
		return nil, errs.Error{Err: errs.ErrRandomness, Description: "curves: reading random scalar: " + err.Error()}
	}
	return k.Add(k, big.NewInt(1)), nil
}

// String returns the canonical curve name.
func (c *Curve) String() string {
	return c.Name
}
