package curves

import (
	"crypto/elliptic"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecdsa/internal/errs"
)

var (
	secp256k1Curve  = fromParams("secp256k1", secp256k1.S256().Params(), big.NewInt(0), []int{1, 3, 132, 0, 10})
	prime256v1Curve = fromParams("prime256v1", elliptic.P256().Params(), big.NewInt(-3), []int{1, 2, 840, 10045, 3, 1, 7})
	secp384r1Curve  = fromParams("secp384r1", elliptic.P384().Params(), big.NewInt(-3), []int{1, 3, 132, 0, 34})
	secp521r1Curve  = fromParams("secp521r1", elliptic.P521().Params(), big.NewInt(-3), []int{1, 3, 132, 0, 35})
)

// supported lists the registered curves in a stable order; the first entry
// is the default curve.
var supported = []*Curve{secp256k1Curve, prime256v1Curve, secp384r1Curve, secp521r1Curve}

// aliases maps lower-case alternative names onto canonical curve names.
var aliases = map[string]*Curve{
	"secp256k1":  secp256k1Curve,
	"prime256v1": prime256v1Curve,
	"secp256r1":  prime256v1Curve,
	"p256":       prime256v1Curve,
	"p-256":      prime256v1Curve,
	"secp384r1":  secp384r1Curve,
	"p384":       secp384r1Curve,
	"p-384":      secp384r1Curve,
	"secp521r1":  secp521r1Curve,
	"p521":       secp521r1Curve,
	"p-521":      secp521r1Curve,
}

// fromParams copies the standard library style parameters into a Curve.
// The NIST curves and secp256k1 are only distinguished by their linear
// coefficient, which elliptic.CurveParams does not carry.
func fromParams(name string, params *elliptic.CurveParams, a *big.Int, oid []int) *Curve {
	p := new(big.Int).Set(params.P)
	return &Curve{
		Name: name,
		P:    p,
		A:    new(big.Int).Mod(a, p),
		B:    new(big.Int).Set(params.B),
		G:    NewPoint(params.Gx, params.Gy),
		N:    new(big.Int).Set(params.N),
		OID:  oid,
	}
}

// Secp256k1 returns the secp256k1 (Koblitz) curve.
func Secp256k1() *Curve { return secp256k1Curve }

// Prime256v1 returns the NIST P-256 curve.
func Prime256v1() *Curve { return prime256v1Curve }

// Secp384r1 returns the NIST P-384 curve.
func Secp384r1() *Curve { return secp384r1Curve }

// Secp521r1 returns the NIST P-521 curve.
func Secp521r1() *Curve { return secp521r1Curve }

// Default returns the curve used when none is specified.
func Default() *Curve { return supported[0] }

// Supported returns the registered curves in registry order.
func Supported() []*Curve {
	out := make([]*Curve, len(supported))
	copy(out, supported)
	return out
}

// Names returns the canonical names of the registered curves.
func Names() []string {
	names := make([]string, len(supported))
	for i, c := range supported {
		names[i] = c.Name
	}
	return names
}

// ByName looks up a curve by name, ignoring case.
func ByName(name string) (*Curve, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errs.Newf(errs.ErrUnsupportedCurve,
			"unknown curve %q, only the following are available: %s",
			name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// ByOID looks up a curve by its object identifier.
func ByOID(oid []int) (*Curve, error) {
	for _, c := range supported {
		if slices.Equal(c.OID, oid) {
			return c, nil
		}
	}
	return nil, errs.Newf(errs.ErrUnsupportedCurve,
		"unknown curve with oid %s, only the following are available: %s",
		FormatOID(oid), strings.Join(Names(), ", "))
}

// FormatOID renders an OID in dotted notation.
func FormatOID(oid []int) string {
	var sb strings.Builder
	for i, arc := range oid {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(arc))
	}
	return sb.String()
}
