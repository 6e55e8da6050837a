// Package digest provides the message hash functions used by signing and
// verification.
//
// A Func maps arbitrary bytes to a fixed-size digest and must be a pure
// function; signing never hard-codes an algorithm but receives a Func.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-ecdsa/internal/errs"
)

// Func hashes a message.
type Func func(message []byte) []byte

// Default is the hash used when none is specified.
const Default = "sha256"

// SHA256 returns the SHA-256 digest of message.
func SHA256(message []byte) []byte {
	h := sha256.Sum256(message)
	return h[:]
}

// SHA384 returns the SHA-384 digest of message.
func SHA384(message []byte) []byte {
	h := sha512.Sum384(message)
	return h[:]
}

// SHA512 returns the SHA-512 digest of message.
func SHA512(message []byte) []byte {
	h := sha512.Sum512(message)
	return h[:]
}

// SHA3256 returns the SHA3-256 digest of message.
func SHA3256(message []byte) []byte {
	h := sha3.Sum256(message)
	return h[:]
}

// Keccak256 returns the legacy Keccak-256 digest used by Ethereum.
func Keccak256(message []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(message)
	return h.Sum(nil)
}

// Blake2b256 returns the BLAKE2b-256 digest of message.
func Blake2b256(message []byte) []byte {
	h := blake2b.Sum256(message)
	return h[:]
}

var registry = map[string]Func{
	"sha256":      SHA256,
	"sha384":      SHA384,
	"sha512":      SHA512,
	"sha3-256":    SHA3256,
	"keccak256":   Keccak256,
	"blake2b-256": Blake2b256,
}

// ByName returns the hash function registered under name (case-insensitive).
func ByName(name string) (Func, error) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errs.Newf(errs.ErrInvalidArgument,
			"unknown hash %q, only the following are available: %s",
			name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// Names returns the registered hash names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
