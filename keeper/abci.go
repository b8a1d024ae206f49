package keeper

import (
	"context"
	"errors"

	"github.com/provlabs/offers/curve"
	"github.com/provlabs/offers/types"
)

// BeginBlocker is a hook that is called at the beginning of every block.
func (k *Keeper) BeginBlocker(ctx context.Context) error {
	return k.processActivations(ctx)
}

type activation struct {
	startTime int64
	offerID   uint64
	vectorID  uint64
}

// processActivations announces every scheduled vector whose start time has been
// reached and removes it from the activation queue. Entries whose offer or
// vector no longer exists are dropped silently.
func (k *Keeper) processActivations(ctx context.Context) error {
	now := k.blockTime(ctx)

	var due []activation
	err := k.ActivationQueue.WalkDue(ctx, now, func(startTime int64, offerID, vectorID uint64) (bool, error) {
		due = append(due, activation{startTime: startTime, offerID: offerID, vectorID: vectorID})
		return false, nil
	})
	if err != nil {
		return err
	}

	for _, a := range due {
		if err := k.ActivationQueue.Dequeue(ctx, a.startTime, a.offerID, a.vectorID); err != nil {
			return err
		}
		k.activateVector(ctx, a, now)
	}
	return nil
}

func (k *Keeper) activateVector(ctx context.Context, a activation, now int64) {
	logger := k.getLogger(ctx)

	offer, err := k.GetOffer(ctx, a.offerID)
	if err != nil {
		if !errors.Is(err, types.ErrOfferNotFound) {
			logger.Error("failed to load offer for activation", "offer_id", a.offerID, "err", err)
		}
		return
	}
	_, v, ok := offer.Vectors.Find(a.vectorID)
	if !ok {
		return
	}

	price, err := curve.CalculateStepPriceAt(v, now)
	if err != nil {
		logger.Error("failed to price activated vector", "offer_id", a.offerID, "vector_id", a.vectorID, "err", err)
		return
	}

	k.emitEvent(ctx, types.NewEventVectorActivated(a.offerID, v, price))
	logger.Info("vector activated", "offer_id", a.offerID, "vector_id", a.vectorID, "price", price)
}
