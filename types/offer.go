package types

import (
	fmt "fmt"

	"cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxFeeBasisPoints is 100% expressed in basis points.
const MaxFeeBasisPoints = 10_000

// Offer is an exchange offer for one (token in, token out) pair together with
// the vectors that define its price curve.
type Offer struct {
	ID             uint64      `json:"id"`
	TokenInDenom   string      `json:"token_in_denom"`
	TokenOutDenom  string      `json:"token_out_denom"`
	FeeBasisPoints uint64      `json:"fee_basis_points"`
	Vectors        VectorStore `json:"vectors"`
	VectorCounter  uint64      `json:"vector_counter"`
}

// NewOffer creates a new offer with an empty vector store.
func NewOffer(id uint64, tokenIn, tokenOut string, feeBasisPoints uint64) Offer {
	return Offer{
		ID:             id,
		TokenInDenom:   tokenIn,
		TokenOutDenom:  tokenOut,
		FeeBasisPoints: feeBasisPoints,
	}
}

// GetAddress returns the offer's deterministic account address.
func (o Offer) GetAddress() sdk.AccAddress {
	return GetOfferAddress(o.ID)
}

// Validate performs basic validation on the offer fields.
func (o Offer) Validate() error {
	if o.ID == 0 {
		return fmt.Errorf("offer id cannot be zero")
	}
	if err := sdk.ValidateDenom(o.TokenInDenom); err != nil {
		return fmt.Errorf("invalid token in denom: %w", err)
	}
	if err := sdk.ValidateDenom(o.TokenOutDenom); err != nil {
		return fmt.Errorf("invalid token out denom: %w", err)
	}
	if o.TokenInDenom == o.TokenOutDenom {
		return fmt.Errorf("token in and token out denoms must differ: %s", o.TokenInDenom)
	}
	if err := ValidateFeeBasisPoints(o.FeeBasisPoints); err != nil {
		return err
	}
	if err := o.Vectors.Validate(); err != nil {
		return fmt.Errorf("invalid vectors: %w", err)
	}
	for _, v := range o.Vectors.Vectors() {
		if v.VectorID > o.VectorCounter {
			return errors.Wrapf(ErrInvalidVectorID, "vector id %d exceeds vector counter %d", v.VectorID, o.VectorCounter)
		}
	}
	return nil
}

// ValidateFeeBasisPoints checks that a fee is within [0, MaxFeeBasisPoints].
func ValidateFeeBasisPoints(fee uint64) error {
	if fee > MaxFeeBasisPoints {
		return errors.Wrapf(ErrInvalidFee, "%d exceeds %d", fee, MaxFeeBasisPoints)
	}
	return nil
}

// Pair returns the canonical BASE/QUOTE rendering of the offer.
func (o Offer) Pair() string {
	return o.TokenInDenom + "/" + o.TokenOutDenom
}
