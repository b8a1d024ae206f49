package keeper

import (
	"context"
	"fmt"

	"github.com/provlabs/offers/curve"
	"github.com/provlabs/offers/types"
)

// AddVector inserts a vector into the offer, retires the vectors made
// unreachable by it and schedules its activation when it starts in the future.
// It returns the stored vector and the retired ones.
func (k *Keeper) AddVector(ctx context.Context, offerID uint64, v types.Vector) (types.Vector, []types.Vector, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return types.Vector{}, nil, err
	}
	now := k.blockTime(ctx)

	inserted, err := curve.InsertVector(&offer, v)
	if err != nil {
		return types.Vector{}, nil, err
	}
	retired, active := curve.CleanOldVectors(&offer, inserted, now)

	if err := k.SetOffer(ctx, offer); err != nil {
		return types.Vector{}, nil, err
	}
	for _, r := range retired {
		if err := k.ActivationQueue.Dequeue(ctx, r.StartTime, offerID, r.VectorID); err != nil {
			return types.Vector{}, nil, fmt.Errorf("failed to dequeue retired vector %d: %w", r.VectorID, err)
		}
	}
	if inserted.StartTime > now {
		if err := k.ActivationQueue.Enqueue(ctx, inserted.StartTime, offerID, inserted.VectorID); err != nil {
			return types.Vector{}, nil, fmt.Errorf("failed to schedule vector %d: %w", inserted.VectorID, err)
		}
	}

	k.emitEvent(ctx, types.NewEventVectorAdded(offerID, inserted))
	for _, r := range retired {
		k.emitEvent(ctx, types.NewEventVectorRetired(offerID, r, active.VectorID))
	}
	if len(retired) > 0 {
		k.getLogger(ctx).Debug("retired vectors", "offer_id", offerID, "count", len(retired), "active_vector_id", active.VectorID)
	}
	return inserted, retired, nil
}

// DeleteVector removes a single vector from the offer. The vector preceding the
// currently active one is protected.
func (k *Keeper) DeleteVector(ctx context.Context, offerID, vectorID uint64) (types.Vector, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return types.Vector{}, err
	}

	removed, err := curve.DeleteVector(&offer, vectorID, k.blockTime(ctx))
	if err != nil {
		return types.Vector{}, err
	}
	if err := k.SetOffer(ctx, offer); err != nil {
		return types.Vector{}, err
	}
	if err := k.ActivationQueue.Dequeue(ctx, removed.StartTime, offerID, removed.VectorID); err != nil {
		return types.Vector{}, fmt.Errorf("failed to dequeue vector %d: %w", removed.VectorID, err)
	}

	k.emitEvent(ctx, types.NewEventVectorDeleted(offerID, removed))
	return removed, nil
}

// DeleteAllVectors clears every vector of the offer without continuity protection.
func (k *Keeper) DeleteAllVectors(ctx context.Context, offerID uint64) ([]types.Vector, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	removed := curve.DeleteAllVectors(&offer)
	if err := k.SetOffer(ctx, offer); err != nil {
		return nil, err
	}
	if err := k.ActivationQueue.RemoveAllForOffer(ctx, offerID); err != nil {
		return nil, fmt.Errorf("failed to clear activations of offer %d: %w", offerID, err)
	}

	k.emitEvent(ctx, types.NewEventVectorsCleared(offerID, removed))
	return removed, nil
}

// GetActiveVector returns the vector of the offer in force at time t along with
// the vector it took over from, if any.
func (k Keeper) GetActiveVector(ctx context.Context, offerID uint64, t int64) (types.Vector, *types.Vector, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return types.Vector{}, nil, err
	}
	vectors := offer.Vectors.Vectors()
	active, ok := curve.FindActiveVectorAt(vectors, t)
	if !ok {
		return types.Vector{}, nil, types.ErrNoActiveVector.Wrapf("offer %d at time %d", offerID, t)
	}
	if prev, ok := curve.FindPrecedingVector(vectors, active); ok {
		return active, &prev, nil
	}
	return active, nil, nil
}
