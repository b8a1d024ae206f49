package curve

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/offers/types"
	"github.com/provlabs/offers/utils"
)

const (
	// maxContinuousAPR bounds the continuous reference yield to 1000% APR.
	maxContinuousAPR = 10 * types.APRScale
	expTerms         = 40
)

// APYFromAPR converts an APR scaled by types.APRScale into the APY earned with
// daily compounding, using the same scale. All intermediates are checked 128-bit
// fixed-point values at 1e18 and every division rounds half up.
func APYFromAPR(apr uint64) (uint64, error) {
	num, err := checkedMul(u(Scale), u(apr))
	if err != nil {
		return 0, err
	}
	incr, err := mulDivRound(num, u(1), u(types.APRScale*DaysPerYear))
	if err != nil {
		return 0, err
	}
	base, err := checkedAdd(u(Scale), incr)
	if err != nil {
		return 0, err
	}
	pow, err := powScaled(base, DaysPerYear)
	if err != nil {
		return 0, err
	}
	apy, err := checkedSub(pow, u(Scale))
	if err != nil {
		return 0, err
	}
	out, err := mulDivRound(apy, u(types.APRScale), u(Scale))
	if err != nil {
		return 0, err
	}
	return toUint64(out)
}

// ContinuousAPY returns e^(apr) - 1 as a decimal fraction. It is the upper bound
// that daily compounding approaches and is reported alongside APYFromAPR.
func ContinuousAPY(apr uint64) (sdkmath.LegacyDec, error) {
	if apr > maxContinuousAPR {
		return sdkmath.LegacyDec{}, types.ErrMathOverflow.Wrapf("apr %d exceeds %d", apr, uint64(maxContinuousAPR))
	}
	x := sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(apr)).QuoInt64(types.APRScale)
	return utils.ExpDec(x, expTerms).Sub(sdkmath.LegacyOneDec()), nil
}
