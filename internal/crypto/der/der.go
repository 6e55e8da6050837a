// Package der implements the subset of ASN.1 Distinguished Encoding Rules
// needed to exchange elliptic curve keys and ECDSA signatures: lengths,
// INTEGER, BIT STRING, OCTET STRING, OBJECT IDENTIFIER, SEQUENCE and
// context-specific constructed tags, plus PEM armoring.
//
// Encoders return freshly allocated byte slices. Decoders follow a
// "remove" style: each one checks the tag at the head of the buffer, parses
// the length, and returns the content together with the unconsumed rest of
// the buffer so sibling fields can be parsed in sequence. Returned slices
// alias the input; nothing is copied while walking a structure.
//
// A decoder never accepts trailing bytes on its own: the caller decides
// whether the rest must be empty.
package der

import (
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/errs"
)

// Universal and context-specific tag bytes.
const (
	TagInteger     = 0x02
	TagBitString   = 0x03
	TagOctetString = 0x04
	TagObject      = 0x06
	TagSequence    = 0x30

	tagConstructed = 0xa0
	tagClassMask   = 0xe0
	tagNumberMask  = 0x1f
)

// maxLengthBytes bounds the long form so lengths always fit in an int.
const maxLengthBytes = 4

var tagNames = map[byte]string{
	TagInteger:     "INTEGER",
	TagBitString:   "BIT STRING",
	TagOctetString: "OCTET STRING",
	TagObject:      "OBJECT IDENTIFIER",
	TagSequence:    "SEQUENCE",
}

func decodeError(format string, args ...interface{}) error {
	return errs.Newf(errs.ErrDecode, "der: "+format, args...)
}

func argumentError(format string, args ...interface{}) error {
	return errs.Newf(errs.ErrInvalidArgument, "der: "+format, args...)
}

// EncodeLength returns the DER length octets for n: a single byte below
// 0x80, otherwise 0x80|k followed by k big-endian bytes.
func EncodeLength(n int) []byte {
	if n < 0 {
		panic("der: negative length")
	}
	if n < 0x80 {
		return []byte{byte(n)}
	}

	var buf [8]byte
	i := len(buf)
	for v := n; v > 0; v >>= 8 {
		i--
		buf[i] = byte(v)
	}
	out := make([]byte, 0, 1+len(buf)-i)
	out = append(out, 0x80|byte(len(buf)-i))
	return append(out, buf[i:]...)
}

// encodeTLV builds tag || length || content.
func encodeTLV(tag byte, content []byte) []byte {
	length := EncodeLength(len(content))
	out := make([]byte, 0, 1+len(length)+len(content))
	out = append(out, tag)
	out = append(out, length...)
	return append(out, content...)
}

// EncodeSequence wraps the already encoded pieces in a SEQUENCE.
func EncodeSequence(pieces ...[]byte) []byte {
	total := 0
	for _, p := range pieces {
		total += len(p)
	}
	content := make([]byte, 0, total)
	for _, p := range pieces {
		content = append(content, p...)
	}
	return encodeTLV(TagSequence, content)
}

// EncodeInteger encodes a non-negative integer in minimal big-endian form.
// A zero byte is prepended when the high bit of the first byte is set so the
// value is not read back as negative. Negative values are rejected.
func EncodeInteger(x *big.Int) ([]byte, error) {
	if x == nil {
		return nil, argumentError("cannot encode nil integer")
	}
	if x.Sign() < 0 {
		return nil, argumentError("cannot encode negative integer %s", x)
	}

	b := x.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	} else if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return encodeTLV(TagInteger, b), nil
}

// EncodeOctetString encodes b as an OCTET STRING.
func EncodeOctetString(b []byte) []byte {
	return encodeTLV(TagOctetString, b)
}

// EncodeBitString encodes b as a BIT STRING with zero unused bits.
func EncodeBitString(b []byte) []byte {
	content := make([]byte, 0, 1+len(b))
	content = append(content, 0x00)
	return encodeTLV(TagBitString, append(content, b...))
}

// EncodeOID encodes an OBJECT IDENTIFIER. The first two arcs are packed into
// one subidentifier 40*first+second, which requires first <= 2 and
// second <= 39; the remaining arcs are written in base 128.
func EncodeOID(oid []int) ([]byte, error) {
	if len(oid) < 2 {
		return nil, argumentError("object identifier needs at least two arcs, got %d", len(oid))
	}
	first, second := oid[0], oid[1]
	if first < 0 || first > 2 {
		return nil, argumentError("first arc has to be <= 2, got %d", first)
	}
	if second < 0 || second > 39 {
		return nil, argumentError("second arc has to be <= 39, got %d", second)
	}

	body := []byte{byte(40*first + second)}
	for _, arc := range oid[2:] {
		if arc < 0 {
			return nil, argumentError("negative object identifier arc %d", arc)
		}
		body = appendBase128(body, arc)
	}
	return encodeTLV(TagObject, body), nil
}

// appendBase128 writes n as big-endian base-128 digits, setting the
// continuation bit on all but the last.
func appendBase128(dst []byte, n int) []byte {
	var digits [10]byte
	i := len(digits) - 1
	digits[i] = byte(n & 0x7f)
	for n >>= 7; n > 0; n >>= 7 {
		i--
		digits[i] = byte(n&0x7f) | 0x80
	}
	return append(dst, digits[i:]...)
}

// EncodeConstructed wraps value in the context-specific constructed tag [n].
func EncodeConstructed(tag int, value []byte) ([]byte, error) {
	if tag < 0 || tag >= tagNumberMask {
		return nil, argumentError("context tag must be in [0, 30], got %d", tag)
	}
	return encodeTLV(tagConstructed|byte(tag), value), nil
}

// readLength parses the length octets at the head of b and returns the
// length and the number of bytes it occupied.
func readLength(b []byte) (int, int, error) {
	if len(b) == 0 {
		return 0, 0, decodeError("missing length")
	}

	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}

	n := int(first & 0x7f)
	switch {
	case n == 0:
		return 0, 0, decodeError("indefinite length is not allowed")
	case n > maxLengthBytes:
		return 0, 0, decodeError("length uses %d bytes, at most %d supported", n, maxLengthBytes)
	case n > len(b)-1:
		return 0, 0, decodeError("ran out of length bytes")
	case b[1] == 0:
		return 0, 0, decodeError("length has leading zero byte")
	}

	length := 0
	for _, v := range b[1 : 1+n] {
		length = length<<8 | int(v)
	}
	if length < 0 {
		return 0, 0, decodeError("length overflows")
	}
	if length < 0x80 {
		return 0, 0, decodeError("length %d must use the short form", length)
	}
	return length, 1 + n, nil
}

// splitTLV parses the length following the tag byte at b[0] and returns the
// content and the remaining bytes.
func splitTLV(b []byte) ([]byte, []byte, error) {
	length, lengthLen, err := readLength(b[1:])
	if err != nil {
		return nil, nil, err
	}

	start := 1 + lengthLen
	if length > len(b)-start {
		return nil, nil, decodeError("length %d exceeds remaining %d bytes", length, len(b)-start)
	}
	end := start + length
	return b[start:end:end], b[end:], nil
}

// removeTagged checks that b starts with tag and splits off its content.
func removeTagged(b []byte, tag byte) ([]byte, []byte, error) {
	if len(b) == 0 {
		return nil, nil, decodeError("wanted %s (0x%02x), got end of input", tagNames[tag], tag)
	}
	if b[0] != tag {
		return nil, nil, decodeError("wanted %s (0x%02x), got 0x%02x", tagNames[tag], tag, b[0])
	}
	return splitTLV(b)
}

// RemoveSequence returns the content of the SEQUENCE at the head of b and the
// bytes following it.
func RemoveSequence(b []byte) (content, rest []byte, err error) {
	return removeTagged(b, TagSequence)
}

// RemoveOctetString returns the content of the OCTET STRING at the head of b
// and the bytes following it.
func RemoveOctetString(b []byte) (content, rest []byte, err error) {
	return removeTagged(b, TagOctetString)
}

// RemoveBitString returns the bits of the BIT STRING at the head of b,
// without the unused-bits prefix, and the bytes following it. Only
// byte-aligned strings (zero unused bits) are accepted.
func RemoveBitString(b []byte) (bits, rest []byte, err error) {
	content, rest, err := removeTagged(b, TagBitString)
	if err != nil {
		return nil, nil, err
	}
	if len(content) == 0 {
		return nil, nil, decodeError("BIT STRING is missing the unused-bits byte")
	}
	if content[0] != 0 {
		return nil, nil, decodeError("BIT STRING with %d unused bits is not supported", content[0])
	}
	return content[1:], rest, nil
}

// RemoveInteger parses the non-negative INTEGER at the head of b.
func RemoveInteger(b []byte) (*big.Int, []byte, error) {
	content, rest, err := removeTagged(b, TagInteger)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case len(content) == 0:
		return nil, nil, decodeError("INTEGER has no content")
	case content[0]&0x80 != 0:
		return nil, nil, decodeError("negative INTEGER is not supported")
	case len(content) > 1 && content[0] == 0 && content[1]&0x80 == 0:
		return nil, nil, decodeError("INTEGER is not minimally encoded")
	}

	return new(big.Int).SetBytes(content), rest, nil
}

// RemoveObject parses the OBJECT IDENTIFIER at the head of b.
func RemoveObject(b []byte) ([]int, []byte, error) {
	body, rest, err := removeTagged(b, TagObject)
	if err != nil {
		return nil, nil, err
	}
	if len(body) == 0 {
		return nil, nil, decodeError("OBJECT IDENTIFIER has no content")
	}

	var arcs []int
	for len(body) > 0 {
		n, consumed, err := readBase128(body)
		if err != nil {
			return nil, nil, err
		}
		body = body[consumed:]

		if arcs == nil {
			// The first subidentifier packs the first two arcs.
			if n < 80 {
				arcs = append(arcs, n/40, n%40)
			} else {
				arcs = append(arcs, 2, n-80)
			}
			continue
		}
		arcs = append(arcs, n)
	}
	return arcs, rest, nil
}

// readBase128 parses one base-128 subidentifier.
func readBase128(b []byte) (int, int, error) {
	if b[0] == 0x80 {
		return 0, 0, decodeError("OBJECT IDENTIFIER arc is not minimally encoded")
	}

	n := 0
	for i, d := range b {
		if n > (int(^uint(0)>>1))>>7 {
			return 0, 0, decodeError("OBJECT IDENTIFIER arc overflows")
		}
		n = n<<7 | int(d&0x7f)
		if d&0x80 == 0 {
			return n, i + 1, nil
		}
	}
	return 0, 0, decodeError("ran out of OBJECT IDENTIFIER bytes")
}

// RemoveConstructed parses the context-specific constructed value [n] at
// the head of b and returns n, its content and the bytes following it.
func RemoveConstructed(b []byte) (tag int, content, rest []byte, err error) {
	if len(b) == 0 {
		return 0, nil, nil, decodeError("wanted constructed tag (0xa0-0xbe), got end of input")
	}
	if b[0]&tagClassMask != tagConstructed || b[0]&tagNumberMask == tagNumberMask {
		return 0, nil, nil, decodeError("wanted constructed tag (0xa0-0xbe), got 0x%02x", b[0])
	}

	content, rest, err = splitTLV(b)
	if err != nil {
		return 0, nil, nil, err
	}
	return int(b[0] & tagNumberMask), content, rest, nil
}
