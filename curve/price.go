package curve

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/provlabs/offers/types"
)

// StepsAt returns the number of completed compounding steps of v at time t.
func StepsAt(v types.Vector, t int64) (uint64, error) {
	if v.PriceFixDuration <= 0 {
		return 0, types.ErrDivByZero.Wrapf("price fix duration %d", v.PriceFixDuration)
	}
	if t < v.BaseTime {
		return 0, types.ErrTimeBeforeBaseTime.Wrapf("time %d, base time %d", t, v.BaseTime)
	}
	// t >= BaseTime so the difference is non-negative and fits in uint64.
	return (uint64(t) - uint64(v.BaseTime)) / uint64(v.PriceFixDuration), nil
}

// StepGrowth returns the per-step growth factor of v at 1e18 scale:
// 1e18 + round(1e18 * APR * PriceFixDuration / (APRScale * SecondsPerYear)).
func StepGrowth(v types.Vector) (*uint256.Int, error) {
	if v.PriceFixDuration <= 0 {
		return nil, types.ErrDivByZero.Wrapf("price fix duration %d", v.PriceFixDuration)
	}
	num, err := checkedMul(u(Scale), u(v.APR))
	if err != nil {
		return nil, err
	}
	incr, err := mulDivRound(num, u(uint64(v.PriceFixDuration)), u(types.APRScale*SecondsPerYear))
	if err != nil {
		return nil, err
	}
	return checkedAdd(u(Scale), incr)
}

// CalculateStepPriceAt returns the price of v at time t. The base price grows by
// StepGrowth once per completed PriceFixDuration since BaseTime.
func CalculateStepPriceAt(v types.Vector, t int64) (uint64, error) {
	steps, err := StepsAt(v, t)
	if err != nil {
		return 0, err
	}
	if steps == 0 {
		return v.BasePrice, nil
	}
	growth, err := StepGrowth(v)
	if err != nil {
		return 0, err
	}
	factor, err := powScaled(growth, steps)
	if err != nil {
		return 0, err
	}
	price, err := mulDivRound(u(v.BasePrice), factor, u(Scale))
	if err != nil {
		return 0, err
	}
	return toUint64(price)
}

// CalculateCurrentStepPrice returns the active vector at now and its price.
func CalculateCurrentStepPrice(vectors []types.Vector, now int64) (types.Vector, uint64, error) {
	active, ok := FindActiveVectorAt(vectors, now)
	if !ok {
		return types.Vector{}, 0, types.ErrNoActiveVector.Wrapf("at time %d", now)
	}
	price, err := CalculateStepPriceAt(active, now)
	if err != nil {
		return types.Vector{}, 0, err
	}
	return active, price, nil
}

// NextPriceChangeTime returns the first time after t at which the price of v steps.
func NextPriceChangeTime(v types.Vector, t int64) (int64, error) {
	if v.BaseTime < 0 {
		return 0, types.ErrInvalidVector.Wrapf("base time must not be negative: %d", v.BaseTime)
	}
	steps, err := StepsAt(v, t)
	if err != nil {
		return 0, err
	}
	next := steps + 1
	d := uint64(v.PriceFixDuration)
	if next > (math.MaxInt64-uint64(v.BaseTime))/d {
		return 0, types.ErrMathOverflow.Wrapf("next step %d of %ds overflows", next, d)
	}
	return v.BaseTime + int64(next*d), nil
}
