package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	markertypes "github.com/provenance-io/provenance/x/marker/types"

	"github.com/provlabs/offers/curve"
	"github.com/provlabs/offers/types"
)

// PriceQuote is the current price of an offer.
type PriceQuote struct {
	Vector              types.Vector
	Price               uint64
	NextPriceChangeTime int64
}

// Valuation is the circulating supply of an offer's token out and its value.
type Valuation struct {
	CirculatingSupply uint64
	Price             uint64
	TVL               uint64
}

// CurrentPrice returns the NAV of the offer at the current block time.
func (k Keeper) CurrentPrice(ctx context.Context, offerID uint64) (PriceQuote, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return PriceQuote{}, err
	}
	now := k.blockTime(ctx)
	active, price, err := curve.CalculateCurrentStepPrice(offer.Vectors.Vectors(), now)
	if err != nil {
		return PriceQuote{}, err
	}
	next, err := curve.NextPriceChangeTime(active, now)
	if err != nil {
		return PriceQuote{}, err
	}
	return PriceQuote{Vector: active, Price: price, NextPriceChangeTime: next}, nil
}

// NavAdjustment returns the current NAV, the price the preceding vector reached
// at the hand-off and the signed difference between the two.
func (k Keeper) NavAdjustment(ctx context.Context, offerID uint64) (current, previous uint64, delta int64, err error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return 0, 0, 0, err
	}
	return curve.NavAdjustment(offer.Vectors.Vectors(), k.blockTime(ctx))
}

// CirculatingSupply returns the supply of denom outside of its marker account.
func (k Keeper) CirculatingSupply(ctx context.Context, denom string) (uint64, error) {
	total, err := narrow(k.BankKeeper.GetSupply(ctx, denom).Amount)
	if err != nil {
		return 0, fmt.Errorf("total supply of %s: %w", denom, err)
	}

	escrowAddr, err := markertypes.MarkerAddress(denom)
	if err != nil {
		return 0, fmt.Errorf("failed to get marker address for %s: %w", denom, err)
	}
	escrowed, err := narrow(k.BankKeeper.GetBalance(ctx, escrowAddr, denom).Amount)
	if err != nil {
		return 0, fmt.Errorf("escrowed supply of %s: %w", denom, err)
	}
	return curve.CirculatingSupply(total, escrowed)
}

// TVL values the circulating supply of the offer's token out at the current NAV.
func (k Keeper) TVL(ctx context.Context, offerID uint64) (Valuation, error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return Valuation{}, err
	}
	_, price, err := curve.CalculateCurrentStepPrice(offer.Vectors.Vectors(), k.blockTime(ctx))
	if err != nil {
		return Valuation{}, err
	}
	supply, err := k.CirculatingSupply(ctx, offer.TokenOutDenom)
	if err != nil {
		return Valuation{}, err
	}
	tvl, err := curve.TVL(supply, price)
	if err != nil {
		return Valuation{}, err
	}
	return Valuation{CirculatingSupply: supply, Price: price, TVL: tvl}, nil
}

// APY returns the APR of the active vector, its daily compounded APY and the
// continuously compounded reference yield.
func (k Keeper) APY(ctx context.Context, offerID uint64) (apr, apy uint64, continuous sdkmath.LegacyDec, err error) {
	active, _, err := k.GetActiveVector(ctx, offerID, k.blockTime(ctx))
	if err != nil {
		return 0, 0, sdkmath.LegacyDec{}, err
	}
	if apy, err = curve.APYFromAPR(active.APR); err != nil {
		return 0, 0, sdkmath.LegacyDec{}, err
	}
	if continuous, err = curve.ContinuousAPY(active.APR); err != nil {
		return 0, 0, sdkmath.LegacyDec{}, err
	}
	return active.APR, apy, continuous, nil
}

// EstimateTakeOffer quotes the fee and token out received for amountIn of token in.
func (k Keeper) EstimateTakeOffer(ctx context.Context, offerID, amountIn uint64) (fee, out, price uint64, err error) {
	offer, err := k.GetOffer(ctx, offerID)
	if err != nil {
		return 0, 0, 0, err
	}
	if _, price, err = curve.CalculateCurrentStepPrice(offer.Vectors.Vectors(), k.blockTime(ctx)); err != nil {
		return 0, 0, 0, err
	}
	if fee, out, err = curve.TokenOutForTokenIn(amountIn, offer.FeeBasisPoints, price); err != nil {
		return 0, 0, 0, err
	}
	return fee, out, price, nil
}

func narrow(amount sdkmath.Int) (uint64, error) {
	if amount.IsNil() || amount.IsNegative() {
		return 0, nil
	}
	if !amount.IsUint64() {
		return 0, types.ErrResultOverflow.Wrapf("amount %s exceeds uint64", amount)
	}
	return amount.Uint64(), nil
}
