package curve

import (
	"github.com/holiman/uint256"

	"github.com/provlabs/offers/types"
)

const (
	// Scale is the internal fixed-point scale used for growth factors (1e18 = 1.0).
	Scale uint64 = 1_000_000_000_000_000_000
	// PriceScale is 10^types.PriceDecimals.
	PriceScale uint64 = 1_000_000_000
	// DaysPerYear is the compounding frequency used by the APY conversion.
	DaysPerYear uint64 = 365
	// SecondsPerYear is the length of the year used to split APR into price steps.
	SecondsPerYear uint64 = 31_536_000
	// maxBits is the width every intermediate value must fit in.
	maxBits = 128
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

// fit rejects values that leave the 128-bit range.
func fit(z *uint256.Int, overflow bool) (*uint256.Int, error) {
	if overflow || z.BitLen() > maxBits {
		return nil, types.ErrMathOverflow.Wrapf("intermediate exceeds %d bits", maxBits)
	}
	return z, nil
}

func checkedMul(a, b *uint256.Int) (*uint256.Int, error) {
	return fit(new(uint256.Int).MulOverflow(a, b))
}

func checkedAdd(a, b *uint256.Int) (*uint256.Int, error) {
	return fit(new(uint256.Int).AddOverflow(a, b))
}

func checkedSub(a, b *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, types.ErrMathOverflow.Wrapf("%s - %s underflows", a.Dec(), b.Dec())
	}
	return z, nil
}

// mulDivFloor returns floor(a*b/d).
func mulDivFloor(a, b, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, types.ErrDivByZero
	}
	prod, err := checkedMul(a, b)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).Div(prod, d), nil
}

// mulDivRound returns (a*b + d/2) / d, rounding half up.
func mulDivRound(a, b, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, types.ErrDivByZero
	}
	prod, err := checkedMul(a, b)
	if err != nil {
		return nil, err
	}
	prod, err = checkedAdd(prod, new(uint256.Int).Rsh(d, 1))
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).Div(prod, d), nil
}

// mulScaled multiplies two Scale fixed-point values.
func mulScaled(a, b *uint256.Int) (*uint256.Int, error) {
	return mulDivRound(a, b, u(Scale))
}

// powScaled raises a Scale fixed-point base to n by exponentiation by squaring.
// The base is only squared while exponent bits remain so that a final unused
// square cannot overflow.
func powScaled(base *uint256.Int, n uint64) (*uint256.Int, error) {
	acc := u(Scale)
	b := new(uint256.Int).Set(base)
	var err error
	for n > 0 {
		if n&1 == 1 {
			if acc, err = mulScaled(acc, b); err != nil {
				return nil, err
			}
		}
		n >>= 1
		if n > 0 {
			if b, err = mulScaled(b, b); err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}

// toUint64 narrows a result to the 64-bit output range.
func toUint64(z *uint256.Int) (uint64, error) {
	if !z.IsUint64() {
		return 0, types.ErrResultOverflow.Wrapf("%s exceeds uint64", z.Dec())
	}
	return z.Uint64(), nil
}
