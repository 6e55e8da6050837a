package command

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/smallyu/go-ecdsa/internal/config"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

const pemMarker = "-----BEGIN"

// readText returns the trimmed content of path.
func readText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// readMessage returns the --message text or the contents of --in.
func readMessage(cmd *cli.Command) ([]byte, error) {
	message := cmd.String("message")
	in := cmd.String("in")

	if message == "" && in == "" {
		return nil, fmt.Errorf("either --message or --in must be provided")
	}
	if message != "" && in != "" {
		return nil, fmt.Errorf("only one of --message or --in should be provided")
	}
	if message != "" {
		return []byte(message), nil
	}

	b, err := os.ReadFile(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", in, err)
	}
	return b, nil
}

// parsePrivateKey accepts a PEM block, hex DER or the hex scalar of curve.
func parsePrivateKey(text string, curve *ecdsa.Curve) (*ecdsa.PrivateKey, error) {
	if strings.Contains(text, pemMarker) {
		return ecdsa.PrivateKeyFromPEM(text)
	}

	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("private key is neither PEM nor hex: %w", err)
	}
	if len(b) == curve.Length() {
		return ecdsa.PrivateKeyFromBytes(b, curve)
	}
	return ecdsa.PrivateKeyFromDER(b)
}

// parsePublicKey accepts a PEM block, hex DER, or the hex point of curve
// with or without the 0x04 prefix.
func parsePublicKey(text string, curve *ecdsa.Curve) (*ecdsa.PublicKey, error) {
	if strings.Contains(text, pemMarker) {
		return ecdsa.PublicKeyFromPEM(text)
	}

	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("public key is neither PEM nor hex: %w", err)
	}
	switch size := 2 * curve.Length(); {
	case len(b) == size:
		return ecdsa.PublicKeyFromBytes(b, curve)
	case len(b) == size+1 && b[0] == 0x04:
		return ecdsa.PublicKeyFromBytes(b[1:], curve)
	}
	return ecdsa.PublicKeyFromDER(b)
}

// parseSignature accepts hex DER or Base64 DER.
func parseSignature(text string) (*ecdsa.Signature, error) {
	text = strings.TrimSpace(text)
	if b, err := hex.DecodeString(text); err == nil {
		return ecdsa.SignatureFromDER(b)
	}
	if _, err := base64.StdEncoding.DecodeString(text); err != nil {
		return nil, fmt.Errorf("signature is neither hex nor base64")
	}
	return ecdsa.SignatureFromBase64(text)
}

func formatPrivateKey(key *ecdsa.PrivateKey, output string) (string, error) {
	switch output {
	case config.OutputDER:
		b, err := key.DER()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b) + "\n", nil
	case config.OutputRaw:
		return key.Hex() + "\n", nil
	}
	return key.PEM()
}

func formatPublicKey(key *ecdsa.PublicKey, output string) (string, error) {
	switch output {
	case config.OutputDER:
		b, err := key.DER()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b) + "\n", nil
	case config.OutputRaw:
		return key.Hex() + "\n", nil
	}
	return key.PEM()
}

func formatSignature(sig *ecdsa.Signature, output string) (string, error) {
	if output == config.OutputPEM {
		s, err := sig.Base64()
		if err != nil {
			return "", err
		}
		return s + "\n", nil
	}

	b, err := sig.DER()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b) + "\n", nil
}
