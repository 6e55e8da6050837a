package ecdsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-ecdsa/internal/errs"
)

// Sign signs the SHA-256 digest of message with key.
func Sign(message []byte, key *PrivateKey) (*Signature, error) {
	return SignWith(rand.Reader, message, key, SHA256)
}

// SignWith signs hash(message) with key, drawing nonces from random.
//
// A nonce that yields r = 0 or s = 0 is discarded and a new one is drawn.
func SignWith(random io.Reader, message []byte, key *PrivateKey, hash HashFunc) (*Signature, error) {
	if !key.valid() {
		return nil, errs.New(errs.ErrInvalidArgument, "ecdsa: invalid private key")
	}
	if hash == nil {
		return nil, errs.New(errs.ErrInvalidArgument, "ecdsa: nil hash function")
	}
	if random == nil {
		random = rand.Reader
	}

	curve := key.Curve
	n := curve.N

	// 1. e = H(m) reduced into [0, n)
	e := hashToInt(hash(message), n)

	for {
		// 2. Random nonce k in [1, n-1], R = k·G, r = R.x mod n
		k, err := curve.RandomScalar(random)
		if err != nil {
			return nil, err
		}
		r := field.Mod(curve.ScalarBaseMult(k).X, n)
		if r.Sign() == 0 {
			continue
		}

		// 3. s = k⁻¹·(e + r·d) mod n
		kInv, err := field.Inverse(k, n)
		if err != nil {
			continue
		}
		s := field.Mul(kInv, field.Add(e, field.Mul(r, key.Secret, n), n), n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature of the SHA-256 digest of
// message under key.
func Verify(message []byte, sig *Signature, key *PublicKey) bool {
	return VerifyWith(message, sig, key, SHA256)
}

// VerifyWith reports whether sig is a valid signature of hash(message)
// under key. Any malformed input, including r or s outside [1, n-1], yields
// false.
func VerifyWith(message []byte, sig *Signature, key *PublicKey, hash HashFunc) bool {
	if sig == nil || sig.R == nil || sig.S == nil || key == nil || key.Curve == nil || hash == nil {
		return false
	}

	curve := key.Curve
	n := curve.N

	// 1. Range check r and s
	if !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false
	}
	if !curve.Contains(key.Point) {
		return false
	}

	// 2. e = H(m) reduced into [0, n)
	e := hashToInt(hash(message), n)

	// 3. w = s⁻¹, u1 = e·w, u2 = r·w
	w, err := field.Inverse(sig.S, n)
	if err != nil {
		return false
	}
	u1 := field.Mul(e, w, n)
	u2 := field.Mul(sig.R, w, n)

	// 4. P = u1·G + u2·Q
	p := curve.Add(curve.ScalarBaseMult(u1), curve.ScalarMult(key.Point, u2))
	if p.IsInfinity() {
		return false
	}

	// 5. Accept when P.x ≡ r (mod n)
	return field.Mod(p.X, n).Cmp(sig.R) == 0
}

// inRange reports whether 1 <= x <= n-1.
func inRange(x, n *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}

// hashToInt converts a digest to an integer modulo n, keeping the leftmost
// n.BitLen() bits when the digest is wider than the group order.
func hashToInt(digest []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}

	e := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		e.Rsh(e, uint(excess))
	}
	return e.Mod(e, n)
}
