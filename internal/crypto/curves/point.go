package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/field"
)

// Point is an affine point on a curve, or the point at infinity (the group
// identity). Points are values: the arithmetic below never mutates its
// operands and always returns freshly allocated coordinates.
type Point struct {
	X, Y *big.Int
	inf  bool
}

// NewPoint returns the affine point (x, y). It does not check that the point
// lies on any curve; use Curve.Contains for that.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity. The zero Point is
// treated as infinity as well.
func (p Point) IsInfinity() bool {
	return p.inf || p.X == nil || p.Y == nil
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%x, %x)", p.X, p.Y)
}

// Negate returns -p.
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return Point{X: new(big.Int).Set(p.X), Y: field.Sub(big.NewInt(0), p.Y, c.P)}
}

// Double returns 2·p using the tangent rule.
func (c *Curve) Double(p Point) Point {
	// A vertical tangent (y = 0) yields the identity.
	if p.IsInfinity() || p.Y.Sign() == 0 {
		return Infinity()
	}

	// λ = (3x² + a) / 2y
	num := field.Mul(big.NewInt(3), field.Square(p.X, c.P), c.P)
	num = field.Add(num, c.A, c.P)
	lambda, err := field.Div(num, field.Add(p.Y, p.Y, c.P), c.P)
	if err != nil {
		// 2y ≡ 0 only when y ≡ 0 for odd P, handled above.
		return Infinity()
	}

	// x3 = λ² - 2x
	x3 := field.Sub(field.Square(lambda, c.P), field.Add(p.X, p.X, c.P), c.P)
	// y3 = λ(x - x3) - y
	y3 := field.Sub(field.Mul(lambda, field.Sub(p.X, x3, c.P), c.P), p.Y, c.P)

	return Point{X: x3, Y: y3}
}

// Add returns p + q using the chord rule.
func (c *Curve) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) == 0 {
			return c.Double(p)
		}
		// p = -q
		return Infinity()
	}

	// λ = (y2 - y1) / (x2 - x1)
	lambda, err := field.Div(field.Sub(q.Y, p.Y, c.P), field.Sub(q.X, p.X, c.P), c.P)
	if err != nil {
		return Infinity()
	}

	// x3 = λ² - x1 - x2
	x3 := field.Sub(field.Sub(field.Square(lambda, c.P), p.X, c.P), q.X, c.P)
	// y3 = λ(x1 - x3) - y1
	y3 := field.Sub(field.Mul(lambda, field.Sub(p.X, x3, c.P), c.P), p.Y, c.P)

	return Point{X: x3, Y: y3}
}

// ScalarMult returns k·p. The scalar is first reduced modulo the group
// order N, so k = 0 and k = N both give the point at infinity.
func (c *Curve) ScalarMult(p Point, k *big.Int) Point {
	k = field.Mod(k, c.N)
	if k.Sign() == 0 || p.IsInfinity() {
		return Infinity()
	}

	// Left-to-right double-and-add over the bits of k.
	result := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = c.Double(result)
		if k.Bit(i) == 1 {
			result = c.Add(result, p)
		}
	}
	return result
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(c.G, k)
}
