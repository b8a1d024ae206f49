package queue

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"

	"github.com/provlabs/offers/types"
)

// ActivationKey orders activations by (start time, offer id, vector id).
type ActivationKey = collections.Triple[int64, uint64, uint64]

// ActivationQueue tracks vectors whose start time has not yet been reached so
// that their activation can be announced at the first block at or after it.
type ActivationQueue struct {
	queue collections.KeySet[ActivationKey]
}

// NewActivationQueue creates a new ActivationQueue.
func NewActivationQueue(builder *collections.SchemaBuilder) *ActivationQueue {
	keyCodec := collections.TripleKeyCodec(
		collections.Int64Key,
		collections.Uint64Key,
		collections.Uint64Key,
	)
	return &ActivationQueue{
		queue: collections.NewKeySet(builder, types.VectorActivationQueuePrefix, types.VectorActivationQueueName, keyCodec),
	}
}

// Enqueue schedules the activation of vectorID of offerID at startTime.
func (q *ActivationQueue) Enqueue(ctx context.Context, startTime int64, offerID, vectorID uint64) error {
	if startTime < 0 {
		return fmt.Errorf("start time cannot be negative")
	}
	return q.queue.Set(ctx, collections.Join3(startTime, offerID, vectorID))
}

// Dequeue removes a scheduled activation. Removing an absent entry is a no-op.
func (q *ActivationQueue) Dequeue(ctx context.Context, startTime int64, offerID, vectorID uint64) error {
	return q.queue.Remove(ctx, collections.Join3(startTime, offerID, vectorID))
}

// Has reports whether the activation is scheduled.
func (q *ActivationQueue) Has(ctx context.Context, startTime int64, offerID, vectorID uint64) (bool, error) {
	return q.queue.Has(ctx, collections.Join3(startTime, offerID, vectorID))
}

// WalkDue iterates over all entries with a start time <= nowSec in time order.
// Iteration stops at the first later entry or when the callback returns
// stop=true or an error.
func (q *ActivationQueue) WalkDue(ctx context.Context, nowSec int64, fn func(startTime int64, offerID, vectorID uint64) (stop bool, err error)) error {
	return q.queue.Walk(ctx, nil, func(key ActivationKey) (bool, error) {
		if key.K1() > nowSec {
			return true, nil
		}
		return fn(key.K1(), key.K2(), key.K3())
	})
}

// Walk iterates over all entries in time order.
func (q *ActivationQueue) Walk(ctx context.Context, fn func(startTime int64, offerID, vectorID uint64) (stop bool, err error)) error {
	return q.queue.Walk(ctx, nil, func(key ActivationKey) (bool, error) {
		return fn(key.K1(), key.K2(), key.K3())
	})
}

// RemoveAllForOffer deletes every scheduled activation of the given offer.
func (q *ActivationQueue) RemoveAllForOffer(ctx context.Context, offerID uint64) error {
	var keys []ActivationKey

	err := q.queue.Walk(ctx, nil, func(key ActivationKey) (bool, error) {
		if key.K2() == offerID {
			keys = append(keys, key)
		}
		return false, nil
	})
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := q.queue.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
