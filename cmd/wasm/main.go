//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECDSA WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDSA", map[string]interface{}{
		"generateKey": js.FuncOf(GenerateKey),
		"publicKey":   js.FuncOf(PublicKey),
		"sign":        js.FuncOf(Sign),
		"verify":      js.FuncOf(Verify),
	})

	<-c
}

// GenerateKey creates a key pair.
// Arguments:
// 0: curve name (optional, secp256k1 when empty)
// Returns:
// JSON string { curve, privateKey, publicKey } with PEM keys, or an error string
func GenerateKey(this js.Value, args []js.Value) interface{} {
	name := ""
	if len(args) > 0 {
		name = args[0].String()
	}

	var curve *ecdsa.Curve
	if name != "" {
		var err error
		curve, err = ecdsa.CurveByName(name)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	}

	key, err := ecdsa.GeneratePrivateKey(curve)
	if err != nil {
		return fmt.Sprintf("error: failed to generate key: %v", err)
	}
	privPEM, err := key.PEM()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pubPEM, err := key.PublicKey().PEM()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	resp := map[string]interface{}{
		"curve":      key.Curve.Name,
		"privateKey": privPEM,
		"publicKey":  pubPEM,
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// PublicKey derives the public key of a private key.
// Arguments:
// 0: private key PEM
// Returns:
// public key PEM, or an error string
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (privateKeyPEM)"
	}

	key, err := ecdsa.PrivateKeyFromPEM(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid private key: %v", err)
	}
	pubPEM, err := key.PublicKey().PEM()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return pubPEM
}

// Sign signs a message.
// Arguments:
// 0: private key PEM
// 1: message
// 2: hash name (optional, sha256 when empty)
// Returns:
// Base64 DER signature, or an error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return "error: expected at least 2 arguments (privateKeyPEM, message)"
	}

	key, err := ecdsa.PrivateKeyFromPEM(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid private key: %v", err)
	}
	hash, err := hashArg(args, 2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := ecdsa.SignWith(nil, []byte(args[1].String()), key, hash)
	if err != nil {
		return fmt.Sprintf("error: failed to sign: %v", err)
	}
	out, err := sig.Base64()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

// Verify checks a signature.
// Arguments:
// 0: public key PEM
// 1: message
// 2: Base64 DER signature
// 3: hash name (optional, sha256 when empty)
// Returns:
// bool, or an error string for malformed input
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return "error: expected at least 3 arguments (publicKeyPEM, message, signature)"
	}

	key, err := ecdsa.PublicKeyFromPEM(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid public key: %v", err)
	}
	sig, err := ecdsa.SignatureFromBase64(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid signature: %v", err)
	}
	hash, err := hashArg(args, 3)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return ecdsa.VerifyWith([]byte(args[1].String()), sig, key, hash)
}

// hashArg reads the optional hash name at index i.
func hashArg(args []js.Value, i int) (ecdsa.HashFunc, error) {
	if len(args) <= i || args[i].IsUndefined() || args[i].String() == "" {
		return ecdsa.SHA256, nil
	}
	return ecdsa.HashByName(args[i].String())
}
