package der

import (
	"encoding/base64"
	"encoding/pem"
	"strings"
)

const pemBoundary = "-----"

// ToPEM armors der as base64 wrapped at 64 columns between
// "-----BEGIN label-----" and "-----END label-----" lines.
func ToPEM(der []byte, label string) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: label, Bytes: der}))
}

// FromPEM drops every line whose trimmed content starts with "-----" and
// base64-decodes the concatenation of the remaining lines.
func FromPEM(text string) ([]byte, error) {
	var body strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, pemBoundary) {
			continue
		}
		body.WriteString(line)
	}
	if body.Len() == 0 {
		return nil, decodeError("no PEM data found")
	}

	out, err := base64.StdEncoding.DecodeString(body.String())
	if err != nil {
		return nil, decodeError("invalid PEM body: %v", err)
	}
	return out, nil
}

// FromPEMBlock decodes the body of the single block labelled label. Text
// before the BEGIN marker, such as an OpenSSL "EC PARAMETERS" block, is
// ignored.
func FromPEMBlock(text, label string) ([]byte, error) {
	begin := pemBoundary + "BEGIN " + label + pemBoundary
	end := pemBoundary + "END " + label + pemBoundary

	switch n := strings.Count(text, begin); {
	case n == 0:
		return nil, decodeError("missing %q marker", begin)
	case n > 1:
		return nil, decodeError("found %d %q markers, expected one", n, begin)
	}

	body := text[strings.Index(text, begin)+len(begin):]
	stop := strings.Index(body, end)
	if stop < 0 {
		return nil, decodeError("missing %q marker", end)
	}
	return FromPEM(body[:stop])
}
