package ecdsa

import "github.com/smallyu/go-ecdsa/internal/crypto/digest"

// HashFunc maps a message to its digest.
type HashFunc = digest.Func

// Hash functions that can be passed to SignWith and VerifyWith.
var (
	SHA256     HashFunc = digest.SHA256
	SHA384     HashFunc = digest.SHA384
	SHA512     HashFunc = digest.SHA512
	SHA3256    HashFunc = digest.SHA3256
	Keccak256  HashFunc = digest.Keccak256
	Blake2b256 HashFunc = digest.Blake2b256
)

// HashByName returns a registered hash function, e.g. "sha256" or
// "keccak256".
func HashByName(name string) (HashFunc, error) {
	return digest.ByName(name)
}
