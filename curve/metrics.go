package curve

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/offers/types"
)

// PriceDelta returns current - previous narrowed to int64.
func PriceDelta(current, previous uint64) (int64, error) {
	delta := sdkmath.NewIntFromUint64(current).Sub(sdkmath.NewIntFromUint64(previous))
	if !delta.IsInt64() {
		return 0, types.ErrResultOverflow.Wrapf("price delta %s exceeds int64", delta)
	}
	return delta.Int64(), nil
}

// TVL returns floor(supply * price / 10^PriceDecimals).
func TVL(supply, price uint64) (uint64, error) {
	tvl, err := mulDivFloor(u(supply), u(price), u(PriceScale))
	if err != nil {
		return 0, err
	}
	return toUint64(tvl)
}

// CirculatingSupply returns the supply held outside of escrow.
func CirculatingSupply(total, escrowed uint64) (uint64, error) {
	if escrowed > total {
		return 0, types.ErrMathOverflow.Wrapf("escrowed %d exceeds total supply %d", escrowed, total)
	}
	return total - escrowed, nil
}

// NavAdjustment returns the price movement at the hand-off from the preceding
// vector to active: the active vector's price at now minus the preceding
// vector's price at the active vector's start. previous is zero when there is
// no preceding vector.
func NavAdjustment(vectors []types.Vector, now int64) (current, previous uint64, delta int64, err error) {
	active, current, err := CalculateCurrentStepPrice(vectors, now)
	if err != nil {
		return 0, 0, 0, err
	}
	if prev, ok := FindPrecedingVector(vectors, active); ok {
		if previous, err = CalculateStepPriceAt(prev, active.StartTime); err != nil {
			return 0, 0, 0, err
		}
	}
	delta, err = PriceDelta(current, previous)
	if err != nil {
		return 0, 0, 0, err
	}
	return current, previous, delta, nil
}

// TokenOutForTokenIn quotes a take of amountIn against an offer priced at price:
// fee = floor(amountIn * feeBps / 10000) and
// out = floor((amountIn - fee) * 10^PriceDecimals / price).
func TokenOutForTokenIn(amountIn, feeBasisPoints, price uint64) (fee, out uint64, err error) {
	if err := types.ValidateFeeBasisPoints(feeBasisPoints); err != nil {
		return 0, 0, err
	}
	if price == 0 {
		return 0, 0, types.ErrDivByZero.Wrap("price is zero")
	}
	f, err := mulDivFloor(u(amountIn), u(feeBasisPoints), u(types.MaxFeeBasisPoints))
	if err != nil {
		return 0, 0, err
	}
	if fee, err = toUint64(f); err != nil {
		return 0, 0, err
	}
	o, err := mulDivFloor(u(amountIn-fee), u(PriceScale), u(price))
	if err != nil {
		return 0, 0, err
	}
	if out, err = toUint64(o); err != nil {
		return 0, 0, err
	}
	return fee, out, nil
}
