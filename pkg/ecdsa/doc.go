// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm
// over short Weierstrass curves, together with the DER, PEM and Base64
// encodings needed to exchange keys and signatures with other toolchains
// such as OpenSSL.
//
// # Keys
//
// Generate a key pair on a named curve:
//
//	curve, err := ecdsa.CurveByName("secp256k1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	priv, err := ecdsa.GeneratePrivateKey(curve)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pub := priv.PublicKey()
//
// # Signing
//
// Sign and verify with SHA-256, or choose another hash with SignWith and
// VerifyWith:
//
//	sig, err := ecdsa.Sign([]byte("This is the right message"), priv)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ok := ecdsa.Verify([]byte("This is the right message"), sig, pub)
//
// Verify only reports whether the signature is valid; it never returns an
// error. Malformed encodings are rejected earlier by the decoders.
//
// # Serialization
//
// Private keys use the SEC 1 "EC PRIVATE KEY" structure, public keys the
// X.509 SubjectPublicKeyInfo "PUBLIC KEY" structure and signatures the
// SEQUENCE { r, s } structure:
//
//	pemText, err := priv.PEM()
//	der, err := pub.DER()
//	b64, err := sig.Base64()
//
// Every decoder rejects trailing bytes and reports failures as an Error
// whose kind can be tested with errors.Is, e.g. errors.Is(err, ErrDecode).
package ecdsa
