package ecdsa

import (
	"encoding/hex"
	"slices"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/der"
	"github.com/smallyu/go-ecdsa/internal/errs"
)

// PEM label of SubjectPublicKeyInfo public keys.
const publicKeyPEMLabel = "PUBLIC KEY"

// oidPublicKeyECDSA identifies id-ecPublicKey (1.2.840.10045.2.1).
var oidPublicKeyECDSA = []int{1, 2, 840, 10045, 2, 1}

// PublicKey is a non-infinity point on a curve.
type PublicKey struct {
	Curve *Curve
	Point Point
}

// NewPublicKey validates that point lies on curve.
func NewPublicKey(curve *Curve, point Point) (*PublicKey, error) {
	curve = curveOrDefault(curve)
	if !curve.Contains(point) {
		return nil, errs.Newf(errs.ErrInvalidPoint, "ecdsa: point %s is not valid for curve %s", point, curve.Name)
	}
	return &PublicKey{Curve: curve, Point: point}, nil
}

// valid reports whether k holds a curve and a finite point on it.
func (k *PublicKey) valid() bool {
	return k != nil && k.Curve != nil && k.Curve.Contains(k.Point)
}

// Equal reports whether k and other are the same point on the same curve.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && k.Curve == other.Curve && k.Point.Equal(other.Point)
}

// Bytes returns x || y, each padded to the curve length, or nil when the
// key is not valid.
func (k *PublicKey) Bytes() []byte {
	if !k.valid() {
		return nil
	}
	return pointBytes(k.Point, k.Curve)
}

// Hex returns Bytes in hexadecimal.
func (k *PublicKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// Uncompressed returns the SEC 1 uncompressed encoding 0x04 || x || y, or
// nil when the key is not valid.
func (k *PublicKey) Uncompressed() []byte {
	if !k.valid() {
		return nil
	}
	return uncompressedPoint(k.Point, k.Curve)
}

// PublicKeyFromBytes parses the fixed-width encoding produced by Bytes and
// rejects points that are not on the curve.
func PublicKeyFromBytes(b []byte, curve *Curve) (*PublicKey, error) {
	curve = curveOrDefault(curve)
	p, err := parsePoint(b, curve)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Curve: curve, Point: p}, nil
}

// PublicKeyFromHex parses the hexadecimal encoding produced by Hex.
func PublicKeyFromHex(s string, curve *Curve) (*PublicKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return PublicKeyFromBytes(b, curve)
}

// DER encodes the key as
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	  algorithm SEQUENCE { id-ecPublicKey, namedCurve },
//	  subjectPublicKey BIT STRING }
func (k *PublicKey) DER() ([]byte, error) {
	if !k.valid() {
		return nil, errs.New(errs.ErrInvalidArgument, "ecdsa: cannot encode invalid public key")
	}

	algorithm, err := der.EncodeOID(oidPublicKeyECDSA)
	if err != nil {
		return nil, err
	}
	namedCurve, err := der.EncodeOID(k.Curve.OID)
	if err != nil {
		return nil, err
	}

	return der.EncodeSequence(
		der.EncodeSequence(algorithm, namedCurve),
		der.EncodeBitString(k.Uncompressed()),
	), nil
}

// PEM returns the DER encoding armored as "PUBLIC KEY".
func (k *PublicKey) PEM() (string, error) {
	b, err := k.DER()
	if err != nil {
		return "", err
	}
	return der.ToPEM(b, publicKeyPEMLabel), nil
}

// PublicKeyFromPEM decodes the "PUBLIC KEY" block in text.
func PublicKeyFromPEM(text string) (*PublicKey, error) {
	b, err := der.FromPEMBlock(text, publicKeyPEMLabel)
	if err != nil {
		return nil, err
	}
	return PublicKeyFromDER(b)
}

// PublicKeyFromDER decodes a SubjectPublicKeyInfo holding an EC key and
// validates the point against the named curve.
func PublicKeyFromDER(b []byte) (*PublicKey, error) {
	seq, rest, err := der.RemoveSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, trailingJunk("DER public key", rest)
	}

	algorithm, pointString, err := der.RemoveSequence(seq)
	if err != nil {
		return nil, err
	}

	keyType, rest, err := der.RemoveObject(algorithm)
	if err != nil {
		return nil, err
	}
	if !slices.Equal(keyType, oidPublicKeyECDSA) {
		return nil, errs.Newf(errs.ErrDecode,
			"ecdsa: unsupported public key algorithm %s, expected %s",
			curves.FormatOID(keyType), curves.FormatOID(oidPublicKeyECDSA))
	}
	oid, rest, err := der.RemoveObject(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, trailingJunk("DER public key objects", rest)
	}
	curve, err := curves.ByOID(oid)
	if err != nil {
		return nil, err
	}

	bits, rest, err := der.RemoveBitString(pointString)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, trailingJunk("public key point-string", rest)
	}
	point, err := parseUncompressedPoint(bits, curve)
	if err != nil {
		return nil, err
	}

	return &PublicKey{Curve: curve, Point: point}, nil
}
