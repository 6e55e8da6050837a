package ecdsa

import (
	"encoding/base64"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/der"
	"github.com/smallyu/go-ecdsa/internal/errs"
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R, S *big.Int
}

// NewSignature returns the signature (r, s).
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: new(big.Int).Set(r), S: new(big.Int).Set(s)}
}

// Equal reports whether sig and other hold the same values. Signatures with
// a missing value are never equal.
func (sig *Signature) Equal(other *Signature) bool {
	if sig == nil || other == nil || sig.R == nil || sig.S == nil || other.R == nil || other.S == nil {
		return false
	}
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// DER encodes the signature as SEQUENCE { INTEGER r, INTEGER s }. Negative
// values are rejected.
func (sig *Signature) DER() ([]byte, error) {
	r, err := der.EncodeInteger(sig.R)
	if err != nil {
		return nil, err
	}
	s, err := der.EncodeInteger(sig.S)
	if err != nil {
		return nil, err
	}
	return der.EncodeSequence(r, s), nil
}

// Base64 returns the standard Base64 encoding of DER.
func (sig *Signature) Base64() (string, error) {
	b, err := sig.DER()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// SignatureFromDER decodes SEQUENCE { INTEGER r, INTEGER s } and rejects
// trailing bytes after either integer or after the sequence.
func SignatureFromDER(b []byte) (*Signature, error) {
	seq, rest, err := der.RemoveSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, trailingJunk("DER signature", rest)
	}

	r, rest, err := der.RemoveInteger(seq)
	if err != nil {
		return nil, err
	}
	s, rest, err := der.RemoveInteger(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, trailingJunk("DER numbers", rest)
	}

	return &Signature{R: r, S: s}, nil
}

// SignatureFromBase64 decodes the encoding produced by Base64.
func SignatureFromBase64(s string) (*Signature, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Newf(errs.ErrDecode, "ecdsa: invalid base64 signature: %v", err)
	}
	return SignatureFromDER(b)
}
