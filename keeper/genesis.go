package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/offers/types"
)

// InitGenesis initializes the offers module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid offers genesis state: %w", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	if err := k.OfferSequence.Set(ctx, genState.OfferSequence); err != nil {
		panic(fmt.Errorf("failed to set offer sequence: %w", err))
	}

	now := ctx.BlockTime().Unix()
	for _, offer := range genState.Offers {
		if err := k.SetOffer(ctx, offer); err != nil {
			panic(fmt.Errorf("failed to store offer %d: %w", offer.ID, err))
		}
		for _, v := range offer.Vectors.Vectors() {
			if v.StartTime <= now {
				continue
			}
			if err := k.ActivationQueue.Enqueue(ctx, v.StartTime, offer.ID, v.VectorID); err != nil {
				panic(fmt.Errorf("failed to schedule vector %d of offer %d: %w", v.VectorID, offer.ID, err))
			}
		}
	}
}

// ExportGenesis exports the current state of the offers module.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get offers module params: %w", err))
	}

	offers, err := k.GetOffers(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get offers: %w", err))
	}

	seq, err := k.OfferSequence.Peek(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get offer sequence: %w", err))
	}

	return &types.GenesisState{
		Params:        params,
		Offers:        offers,
		OfferSequence: seq,
	}
}
