package ecdsa

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecdsa/internal/errs"
)

// BatchItem is one message, signature and key triple for VerifyBatch.
type BatchItem struct {
	Message   []byte
	Signature *Signature
	PublicKey *PublicKey
}

// batchLimit bounds the number of goroutines a batch call runs at once.
func batchLimit() int {
	return runtime.GOMAXPROCS(0)
}

// SignBatch signs every message with key concurrently. Signatures are
// returned in message order. The first signing error, or cancellation of
// ctx, aborts the batch.
func SignBatch(ctx context.Context, messages [][]byte, key *PrivateKey, hash HashFunc) ([]*Signature, error) {
	if len(messages) == 0 {
		return nil, errs.New(errs.ErrInvalidArgument, "ecdsa: no messages to sign")
	}

	sigs := make([]*Signature, len(messages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchLimit())

	for i, msg := range messages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := SignWith(nil, msg, key, hash)
			if err != nil {
				return err
			}
			sigs[i] = sig
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sigs, nil
}

// VerifyBatch verifies every item concurrently and reports the result of
// each in input order. Like SignBatch it rejects an empty batch; otherwise
// an error is returned only when ctx is cancelled before all items were
// checked.
func VerifyBatch(ctx context.Context, items []BatchItem, hash HashFunc) ([]bool, error) {
	if len(items) == 0 {
		return nil, errs.New(errs.ErrInvalidArgument, "ecdsa: no items to verify")
	}

	results := make([]bool, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchLimit())

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = VerifyWith(item.Message, item.Signature, item.PublicKey, hash)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
