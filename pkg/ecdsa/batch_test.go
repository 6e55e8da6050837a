package ecdsa

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchMessages(n int) [][]byte {
	messages := make([][]byte, n)
	for i := range messages {
		messages[i] = []byte(fmt.Sprintf("message %d", i))
	}
	return messages
}

func TestSignBatch(t *testing.T) {
	key := mustKey(t, nil)
	pub := key.PublicKey()
	messages := batchMessages(16)

	sigs, err := SignBatch(context.Background(), messages, key, SHA256)
	require.NoError(t, err)
	require.Len(t, sigs, len(messages))

	for i, sig := range sigs {
		assert.True(t, Verify(messages[i], sig, pub), "message %d", i)
	}
}

func TestSignBatchErrors(t *testing.T) {
	key := mustKey(t, nil)

	_, err := SignBatch(context.Background(), nil, key, SHA256)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = SignBatch(context.Background(), batchMessages(4), nil, SHA256)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SignBatch(ctx, batchMessages(4), key, SHA256)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestVerifyBatch(t *testing.T) {
	key := mustKey(t, nil)
	other := mustKey(t, nil)
	messages := batchMessages(8)

	sigs, err := SignBatch(context.Background(), messages, key, SHA256)
	require.NoError(t, err)

	items := make([]BatchItem, len(messages))
	want := make([]bool, len(messages))
	for i := range messages {
		items[i] = BatchItem{Message: messages[i], Signature: sigs[i], PublicKey: key.PublicKey()}
		want[i] = true
	}
	items[2].Message = []byte("tampered")
	want[2] = false
	items[5].PublicKey = other.PublicKey()
	want[5] = false
	items[7].Signature = nil
	want[7] = false

	got, err := VerifyBatch(context.Background(), items, SHA256)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerifyBatchEmptyAndCancelled(t *testing.T) {
	got, err := VerifyBatch(context.Background(), nil, SHA256)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Nil(t, got)

	_, err = VerifyBatch(context.Background(), []BatchItem{}, SHA256)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = VerifyBatch(ctx, []BatchItem{{Message: []byte("m")}}, SHA256)
	assert.True(t, errors.Is(err, context.Canceled))
}
