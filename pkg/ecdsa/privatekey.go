package ecdsa

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/der"
	"github.com/smallyu/go-ecdsa/internal/errs"
)

// PEM label of SEC 1 private keys.
const privateKeyPEMLabel = "EC PRIVATE KEY"

// privateKeyVersion is the only version of the SEC 1 ECPrivateKey structure.
const privateKeyVersion = 1

// PrivateKey is a secret scalar in [1, n-1] on a curve. Keys are immutable
// once created; the fields must not be modified.
type PrivateKey struct {
	Curve  *Curve
	Secret *big.Int
}

// GeneratePrivateKey returns a new key on curve (secp256k1 when nil) using
// crypto/rand.
func GeneratePrivateKey(curve *Curve) (*PrivateKey, error) {
	return GeneratePrivateKeyFrom(rand.Reader, curve)
}

// GeneratePrivateKeyFrom returns a new key on curve drawing randomness from
// random.
func GeneratePrivateKeyFrom(random io.Reader, curve *Curve) (*PrivateKey, error) {
	curve = curveOrDefault(curve)
	secret, err := curve.RandomScalar(random)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{Curve: curve, Secret: secret}, nil
}

// NewPrivateKey wraps an existing secret, which must lie in [1, n-1].
func NewPrivateKey(curve *Curve, secret *big.Int) (*PrivateKey, error) {
	curve = curveOrDefault(curve)
	if !validSecret(secret, curve) {
		return nil, errs.Newf(errs.ErrInvalidArgument,
			"ecdsa: secret must be in [1, n-1] for curve %s", curve.Name)
	}
	return &PrivateKey{Curve: curve, Secret: new(big.Int).Set(secret)}, nil
}

func validSecret(secret *big.Int, curve *curves.Curve) bool {
	return secret != nil && secret.Sign() > 0 && secret.Cmp(curve.N) < 0
}

// valid reports whether k holds a curve and a secret in [1, n-1]. Keys built
// by hand rather than through the constructors may fail this check.
func (k *PrivateKey) valid() bool {
	return k != nil && k.Curve != nil && validSecret(k.Secret, k.Curve)
}

// PublicKey derives the public key secret·G.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{Curve: k.Curve, Point: k.Curve.ScalarBaseMult(k.Secret)}
}

// Equal reports whether k and other hold the same secret on the same curve.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	return other != nil && k.Curve == other.Curve &&
		k.Secret != nil && other.Secret != nil && k.Secret.Cmp(other.Secret) == 0
}

// Bytes returns the secret as a big-endian value padded to the curve length,
// or nil when the key is not valid.
func (k *PrivateKey) Bytes() []byte {
	if !k.valid() {
		return nil
	}
	return fixedBytes(k.Secret, k.Curve.Length())
}

// Hex returns Bytes in hexadecimal.
func (k *PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// PrivateKeyFromBytes parses the fixed-width encoding produced by Bytes.
func PrivateKeyFromBytes(b []byte, curve *Curve) (*PrivateKey, error) {
	curve = curveOrDefault(curve)
	if len(b) != curve.Length() {
		return nil, errs.Newf(errs.ErrDecode,
			"ecdsa: private key for curve %s must be %d bytes, got %d", curve.Name, curve.Length(), len(b))
	}
	return privateKeyFromSecret(b, curve)
}

// PrivateKeyFromHex parses the hexadecimal encoding produced by Hex.
func PrivateKeyFromHex(s string, curve *Curve) (*PrivateKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromBytes(b, curve)
}

// privateKeyFromSecret reads a big-endian secret of at most the curve
// length. Shorter inputs are implicitly left-padded with zeros.
func privateKeyFromSecret(b []byte, curve *curves.Curve) (*PrivateKey, error) {
	if len(b) > curve.Length() {
		return nil, errs.Newf(errs.ErrDecode,
			"ecdsa: private key is %d bytes, curve %s allows at most %d", len(b), curve.Name, curve.Length())
	}
	secret := new(big.Int).SetBytes(b)
	if !validSecret(secret, curve) {
		return nil, errs.Newf(errs.ErrDecode, "ecdsa: private key is out of range for curve %s", curve.Name)
	}
	return &PrivateKey{Curve: curve, Secret: secret}, nil
}

// DER encodes the key as
//
//	ECPrivateKey ::= SEQUENCE {
//	  version        INTEGER { ecPrivkeyVer1(1) },
//	  privateKey     OCTET STRING,
//	  parameters [0] OBJECT IDENTIFIER,
//	  publicKey  [1] BIT STRING }
func (k *PrivateKey) DER() ([]byte, error) {
	if !k.valid() {
		return nil, errs.New(errs.ErrInvalidArgument, "ecdsa: cannot encode invalid private key")
	}

	version, err := der.EncodeInteger(big.NewInt(privateKeyVersion))
	if err != nil {
		return nil, err
	}
	oid, err := der.EncodeOID(k.Curve.OID)
	if err != nil {
		return nil, err
	}
	params, err := der.EncodeConstructed(0, oid)
	if err != nil {
		return nil, err
	}
	public, err := der.EncodeConstructed(1, der.EncodeBitString(uncompressedPoint(k.PublicKey().Point, k.Curve)))
	if err != nil {
		return nil, err
	}

	return der.EncodeSequence(version, der.EncodeOctetString(k.Bytes()), params, public), nil
}

// PEM returns the DER encoding armored as "EC PRIVATE KEY".
func (k *PrivateKey) PEM() (string, error) {
	b, err := k.DER()
	if err != nil {
		return "", err
	}
	return der.ToPEM(b, privateKeyPEMLabel), nil
}

// PrivateKeyFromPEM decodes the "EC PRIVATE KEY" block in text. Other
// blocks before it, such as OpenSSL's "EC PARAMETERS", are skipped.
func PrivateKeyFromPEM(text string) (*PrivateKey, error) {
	b, err := der.FromPEMBlock(text, privateKeyPEMLabel)
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromDER(b)
}

// PrivateKeyFromDER decodes a SEC 1 ECPrivateKey. The curve parameters are
// required; the public key is optional but must match the secret when
// present.
func PrivateKeyFromDER(b []byte) (*PrivateKey, error) {
	seq, rest, err := der.RemoveSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, trailingJunk("DER private key", rest)
	}

	// 1. Version
	version, rest, err := der.RemoveInteger(seq)
	if err != nil {
		return nil, err
	}
	if version.Cmp(big.NewInt(privateKeyVersion)) != 0 {
		return nil, errs.Newf(errs.ErrDecode, "ecdsa: expected version 1 at start of DER private key, got %s", version)
	}

	// 2. Secret
	secret, rest, err := der.RemoveOctetString(rest)
	if err != nil {
		return nil, err
	}

	// 3. Curve
	tag, params, rest, err := der.RemoveConstructed(rest)
	if err != nil {
		return nil, err
	}
	if tag != 0 {
		return nil, errs.Newf(errs.ErrDecode, "ecdsa: expected tag [0] in DER private key, got [%d]", tag)
	}
	oid, paramsRest, err := der.RemoveObject(params)
	if err != nil {
		return nil, err
	}
	if len(paramsRest) > 0 {
		return nil, trailingJunk("DER private key curve oid", paramsRest)
	}
	curve, err := curves.ByOID(oid)
	if err != nil {
		return nil, err
	}

	key, err := privateKeyFromSecret(secret, curve)
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return key, nil
	}

	// 4. Optional public key
	tag, public, rest, err := der.RemoveConstructed(rest)
	if err != nil {
		return nil, err
	}
	if tag != 1 {
		return nil, errs.Newf(errs.ErrDecode, "ecdsa: expected tag [1] in DER private key, got [%d]", tag)
	}
	if len(rest) > 0 {
		return nil, trailingJunk("DER private key public key", rest)
	}
	bits, bitsRest, err := der.RemoveBitString(public)
	if err != nil {
		return nil, err
	}
	if len(bitsRest) > 0 {
		return nil, trailingJunk("DER private key point-string", bitsRest)
	}
	point, err := parseUncompressedPoint(bits, curve)
	if err != nil {
		return nil, err
	}
	if !point.Equal(key.PublicKey().Point) {
		return nil, errs.New(errs.ErrInvalidPoint, "ecdsa: public key in DER private key does not match the secret")
	}

	return key, nil
}
