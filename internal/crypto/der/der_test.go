package der

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa/internal/errs"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncodeLength(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00"},
		{1, "01"},
		{127, "7f"},
		{128, "8180"},
		{255, "81ff"},
		{256, "820100"},
		{65535, "82ffff"},
		{65536, "83010000"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, hex.EncodeToString(EncodeLength(tc.in)), "length %d", tc.in)
	}
}

func TestEncodeInteger(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "020100"},
		{1, "020101"},
		{127, "02017f"},
		{128, "02020080"},
		{255, "020200ff"},
		{256, "02020100"},
		{32768, "0203008000"},
	}

	for _, tc := range tests {
		got, err := EncodeInteger(big.NewInt(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, hex.EncodeToString(got), "integer %d", tc.in)

		back, rest, err := RemoveInteger(got)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, tc.in, back.Int64())
	}

	t.Run("negative", func(t *testing.T) {
		_, err := EncodeInteger(big.NewInt(-1))
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("nil", func(t *testing.T) {
		_, err := EncodeInteger(nil)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	})
}

func TestEncodeOID(t *testing.T) {
	tests := []struct {
		oid  []int
		want string
	}{
		{[]int{1, 2, 840, 10045, 2, 1}, "06072a8648ce3d0201"},
		{[]int{1, 3, 132, 0, 10}, "06052b8104000a"},
		{[]int{1, 2, 840, 10045, 3, 1, 7}, "06082a8648ce3d030107"},
		{[]int{1, 3, 132, 0, 35}, "06052b81040023"},
		{[]int{2, 5}, "060155"},
	}

	for _, tc := range tests {
		got, err := EncodeOID(tc.oid)
		require.NoError(t, err)
		assert.Equal(t, tc.want, hex.EncodeToString(got))

		back, rest, err := RemoveObject(got)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, tc.oid, back)
	}

	invalid := [][]int{
		{1},
		{3, 1},
		{1, 40},
		{-1, 2},
		{1, 2, -5},
	}
	for _, oid := range invalid {
		_, err := EncodeOID(oid)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument), "oid %v", oid)
	}
}

func TestEncodeStrings(t *testing.T) {
	assert.Equal(t, "0403010203", hex.EncodeToString(EncodeOctetString([]byte{1, 2, 3})))
	assert.Equal(t, "0400", hex.EncodeToString(EncodeOctetString(nil)))
	assert.Equal(t, "0303000401", hex.EncodeToString(EncodeBitString([]byte{4, 1})))

	long := bytes.Repeat([]byte{0xab}, 200)
	enc := EncodeOctetString(long)
	assert.Equal(t, []byte{TagOctetString, 0x81, 200}, enc[:3])
	content, rest, err := RemoveOctetString(enc)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, long, content)
}

func TestEncodeSequenceAndConstructed(t *testing.T) {
	one, _ := EncodeInteger(big.NewInt(1))
	seq := EncodeSequence(one, one)
	assert.Equal(t, "3006020101020101", hex.EncodeToString(seq))
	assert.Equal(t, "3000", hex.EncodeToString(EncodeSequence()))

	c, err := EncodeConstructed(1, one)
	require.NoError(t, err)
	assert.Equal(t, "a103020101", hex.EncodeToString(c))

	_, err = EncodeConstructed(31, one)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestRemoveSequence(t *testing.T) {
	content, rest, err := RemoveSequence(unhex(t, "3003020101ff"))
	require.NoError(t, err)
	assert.Equal(t, unhex(t, "020101"), content)
	assert.Equal(t, []byte{0xff}, rest)

	// Sibling parsing over the content.
	n, tail, err := RemoveInteger(content)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Int64())
	assert.Empty(t, tail)
}

func TestRemoveNested(t *testing.T) {
	// SEQUENCE { SEQUENCE { OID 1.2.840.10045.2.1 }, OCTET STRING 01 }
	in := unhex(t, "300e300906072a8648ce3d0201040101")
	outer, rest, err := RemoveSequence(in)
	require.NoError(t, err)
	require.Empty(t, rest)

	inner, afterInner, err := RemoveSequence(outer)
	require.NoError(t, err)
	oid, afterOID, err := RemoveObject(inner)
	require.NoError(t, err)
	assert.Empty(t, afterOID)
	assert.Equal(t, []int{1, 2, 840, 10045, 2, 1}, oid)

	octets, rest, err := RemoveOctetString(afterInner)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, []byte{1}, octets)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		decode func([]byte) error
	}{
		{"sequence wrong tag", "020101", seqDecoder},
		{"sequence empty", "", seqDecoder},
		{"sequence missing length", "30", seqDecoder},
		{"sequence overrun", "300501", seqDecoder},
		{"indefinite length", "3080020101", seqDecoder},
		{"too many length bytes", "3085000000000101", seqDecoder},
		{"ran out of length bytes", "308201", seqDecoder},
		{"length leading zero", "30820003020101", seqDecoder},
		{"non-minimal long form", "3081030201010000", seqDecoder},
		{"integer wrong tag", "030101", intDecoder},
		{"integer empty content", "0200", intDecoder},
		{"integer negative", "020180", intDecoder},
		{"integer non-minimal", "0202007f", intDecoder},
		{"integer overrun", "020401", intDecoder},
		{"octet wrong tag", "030100", octetDecoder},
		{"bit string wrong tag", "040100", bitDecoder},
		{"bit string empty", "0300", bitDecoder},
		{"bit string unused bits", "030201ff", bitDecoder},
		{"object wrong tag", "0201 01", objDecoder},
		{"object empty", "0600", objDecoder},
		{"object truncated arc", "06022a86", objDecoder},
		{"object non-minimal arc", "06032a8001", objDecoder},
		{"constructed wrong class", "3003020101", consDecoder},
		{"constructed high tag number", "bf03020101", consDecoder},
		{"constructed empty", "", consDecoder},
		{"constructed overrun", "a00501", consDecoder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := hex.DecodeString(removeSpaces(tc.in))
			require.NoError(t, err)
			err = tc.decode(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrDecode), "got %v", err)
		})
	}
}

func TestDecodeErrorNamesTags(t *testing.T) {
	_, _, err := RemoveSequence([]byte{0x02, 0x01, 0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEQUENCE (0x30)")
	assert.Contains(t, err.Error(), "0x02")
}

func TestRemoveObjectLargeFirstArc(t *testing.T) {
	// 2.999.3
	oid, rest, err := RemoveObject(unhex(t, "0603883703"))
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, []int{2, 999, 3}, oid)
}

func TestRemoveConstructed(t *testing.T) {
	tag, content, rest, err := RemoveConstructed(unhex(t, "a103020101aa"))
	require.NoError(t, err)
	assert.Equal(t, 1, tag)
	assert.Equal(t, unhex(t, "020101"), content)
	assert.Equal(t, []byte{0xaa}, rest)
}

func TestRemoveDoesNotCopy(t *testing.T) {
	in := unhex(t, "0403010203")
	content, _, err := RemoveOctetString(in)
	require.NoError(t, err)
	in[2] = 0x09
	assert.Equal(t, byte(0x09), content[0])

	// The capacity is clipped so appending to a returned slice never
	// overwrites the sibling bytes that follow it.
	assert.Equal(t, len(content), cap(content))
}

func seqDecoder(b []byte) error {
	_, _, err := RemoveSequence(b)
	return err
}

func intDecoder(b []byte) error {
	_, _, err := RemoveInteger(b)
	return err
}

func octetDecoder(b []byte) error {
	_, _, err := RemoveOctetString(b)
	return err
}

func bitDecoder(b []byte) error {
	_, _, err := RemoveBitString(b)
	return err
}

func objDecoder(b []byte) error {
	_, _, err := RemoveObject(b)
	return err
}

func consDecoder(b []byte) error {
	_, _, _, err := RemoveConstructed(b)
	return err
}

func removeSpaces(s string) string {
	return string(bytes.ReplaceAll([]byte(s), []byte(" "), nil))
}
