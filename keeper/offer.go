package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"

	"github.com/provlabs/offers/types"
)

// CreateOffer opens a new offer for the (tokenIn, tokenOut) pair. Only one offer
// may exist per pair.
func (k *Keeper) CreateOffer(ctx context.Context, tokenIn, tokenOut string, feeBasisPoints uint64) (types.Offer, error) {
	if _, err := k.GetOfferByPair(ctx, tokenIn, tokenOut); err == nil {
		return types.Offer{}, types.ErrOfferExists.Wrapf("%s/%s", tokenIn, tokenOut)
	} else if !errors.Is(err, types.ErrOfferNotFound) {
		return types.Offer{}, err
	}

	last, err := k.OfferSequence.Peek(ctx)
	if err != nil {
		return types.Offer{}, fmt.Errorf("failed to get offer sequence: %w", err)
	}
	offer := types.NewOffer(last+1, tokenIn, tokenOut, feeBasisPoints)
	if err := offer.Validate(); err != nil {
		return types.Offer{}, err
	}
	if _, err := k.OfferSequence.Next(ctx); err != nil {
		return types.Offer{}, fmt.Errorf("failed to get next offer id: %w", err)
	}

	if err := k.SetOffer(ctx, offer); err != nil {
		return types.Offer{}, err
	}
	k.getLogger(ctx).Info("created offer", "offer_id", offer.ID, "pair", offer.Pair(), "address", offer.GetAddress().String())
	return offer, nil
}

// GetOffer returns the offer with the given id.
func (k Keeper) GetOffer(ctx context.Context, offerID uint64) (types.Offer, error) {
	offer, err := k.Offers.Get(ctx, offerID)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Offer{}, types.ErrOfferNotFound.Wrapf("offer %d", offerID)
	}
	return offer, err
}

// GetOfferByPair returns the offer trading tokenIn for tokenOut.
func (k Keeper) GetOfferByPair(ctx context.Context, tokenIn, tokenOut string) (types.Offer, error) {
	id, err := k.Offers.Indexes.ByPair.MatchExact(ctx, collections.Join(tokenIn, tokenOut))
	if errors.Is(err, collections.ErrNotFound) {
		return types.Offer{}, types.ErrOfferNotFound.Wrapf("pair %s/%s", tokenIn, tokenOut)
	}
	if err != nil {
		return types.Offer{}, err
	}
	return k.GetOffer(ctx, id)
}

// GetOffers is a helper function for retrieving all offers from state.
func (k Keeper) GetOffers(ctx context.Context) ([]types.Offer, error) {
	offers := []types.Offer{}
	err := k.Offers.Walk(ctx, nil, func(_ uint64, offer types.Offer) (stop bool, err error) {
		offers = append(offers, offer)
		return false, nil
	})
	return offers, err
}

// SetOffer validates and persists an offer.
func (k Keeper) SetOffer(ctx context.Context, offer types.Offer) error {
	if err := offer.Validate(); err != nil {
		return fmt.Errorf("invalid offer %d: %w", offer.ID, err)
	}
	return k.Offers.Set(ctx, offer.ID, offer)
}

// CloseOffer removes an offer together with its vectors and scheduled
// activations. The pair can be offered again afterwards.
func (k *Keeper) CloseOffer(ctx context.Context, offerID uint64) (types.Offer, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return types.Offer{}, err
	}
	if err := k.ActivationQueue.RemoveAllForOffer(ctx, offerID); err != nil {
		return types.Offer{}, fmt.Errorf("failed to clear activations of offer %d: %w", offerID, err)
	}
	if err := k.Offers.Remove(ctx, offerID); err != nil {
		return types.Offer{}, fmt.Errorf("failed to remove offer %d: %w", offerID, err)
	}
	return offer, nil
}

// UpdateOfferFee sets a new fee on the offer and returns the previous one.
func (k *Keeper) UpdateOfferFee(ctx context.Context, offerID, feeBasisPoints uint64) (uint64, error) {
	if err := types.ValidateFeeBasisPoints(feeBasisPoints); err != nil {
		return 0, err
	}
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return 0, err
	}
	before := offer.FeeBasisPoints
	offer.FeeBasisPoints = feeBasisPoints
	if err := k.SetOffer(ctx, offer); err != nil {
		return 0, err
	}
	return before, nil
}
