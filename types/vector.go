package types

import (
	fmt "fmt"

	"cosmossdk.io/errors"
)

const (
	// PriceDecimals is the number of implied decimals carried by vector prices.
	PriceDecimals = 9
	// APRScale is the fixed-point scale of APR and APY values (1_000_000 = 100%).
	APRScale = 1_000_000
)

// Vector is one time-scoped pricing rule of an offer.
//
// A vector becomes eligible to be the active rule at StartTime. Its price is
// anchored at (BaseTime, BasePrice) and compounds at APR once per completed
// PriceFixDuration.
type Vector struct {
	// VectorID is unique within the offer. Zero marks an empty slot.
	VectorID uint64 `json:"vector_id"`
	// StartTime is the unix time (seconds) at which the vector may become active.
	StartTime int64 `json:"start_time"`
	// BaseTime is the unix time (seconds) the price evolution is anchored at.
	BaseTime int64 `json:"base_time"`
	// BasePrice is the anchor price with PriceDecimals implied decimals.
	BasePrice uint64 `json:"base_price"`
	// APR is the annual rate scaled by APRScale.
	APR uint64 `json:"apr"`
	// PriceFixDuration is the length of one compounding step in seconds.
	PriceFixDuration int64 `json:"price_fix_duration"`
}

// IsEmpty returns true when the vector is the empty slot value.
func (v Vector) IsEmpty() bool {
	return v.VectorID == 0 || v.StartTime == 0
}

// ValidateParams checks the caller supplied fields of a vector. The vector id is
// not checked since it is assigned on insertion.
func (v Vector) ValidateParams() error {
	if v.StartTime <= 0 {
		return errors.Wrapf(ErrInvalidVector, "start time must be positive: %d", v.StartTime)
	}
	if v.BaseTime <= 0 {
		return errors.Wrapf(ErrInvalidVector, "base time must be positive: %d", v.BaseTime)
	}
	if v.BaseTime > v.StartTime {
		return errors.Wrapf(ErrInvalidVector, "base time %d is after start time %d", v.BaseTime, v.StartTime)
	}
	if v.BasePrice == 0 {
		return errors.Wrap(ErrInvalidVector, "base price must be positive")
	}
	if v.PriceFixDuration <= 0 {
		return errors.Wrapf(ErrInvalidVector, "price fix duration must be positive: %d", v.PriceFixDuration)
	}
	return nil
}

// Validate checks a stored vector, including its id.
func (v Vector) Validate() error {
	if v.VectorID == 0 {
		return errors.Wrap(ErrInvalidVectorID, "vector id cannot be zero")
	}
	return v.ValidateParams()
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("vector{id=%d start=%d base_time=%d base_price=%d apr=%d step=%ds}",
		v.VectorID, v.StartTime, v.BaseTime, v.BasePrice, v.APR, v.PriceFixDuration)
}
