package types

import (
	"errors"
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreateOfferRequest opens a new offer for a token pair.
type MsgCreateOfferRequest struct {
	Operator       string `json:"operator"`
	TokenInDenom   string `json:"token_in_denom"`
	TokenOutDenom  string `json:"token_out_denom"`
	FeeBasisPoints uint64 `json:"fee_basis_points"`
}

// MsgCreateOfferResponse returns the id assigned to the new offer.
type MsgCreateOfferResponse struct {
	OfferID uint64 `json:"offer_id"`
}

// MsgCloseOfferRequest removes an offer and all of its vectors.
type MsgCloseOfferRequest struct {
	Operator string `json:"operator"`
	OfferID  uint64 `json:"offer_id"`
}

type MsgCloseOfferResponse struct{}

// MsgUpdateOfferFeeRequest changes the fee charged by an offer.
type MsgUpdateOfferFeeRequest struct {
	Operator       string `json:"operator"`
	OfferID        uint64 `json:"offer_id"`
	FeeBasisPoints uint64 `json:"fee_basis_points"`
}

type MsgUpdateOfferFeeResponse struct{}

// MsgAddOfferVectorRequest inserts a new pricing vector into an offer.
type MsgAddOfferVectorRequest struct {
	Operator         string `json:"operator"`
	OfferID          uint64 `json:"offer_id"`
	StartTime        int64  `json:"start_time"`
	BaseTime         int64  `json:"base_time"`
	BasePrice        uint64 `json:"base_price"`
	APR              uint64 `json:"apr"`
	PriceFixDuration int64  `json:"price_fix_duration"`
}

// MsgAddOfferVectorResponse returns the new vector id and the ids retired by the insert.
type MsgAddOfferVectorResponse struct {
	VectorID         uint64   `json:"vector_id"`
	RetiredVectorIDs []uint64 `json:"retired_vector_ids"`
}

// MsgDeleteOfferVectorRequest removes a single vector from an offer.
type MsgDeleteOfferVectorRequest struct {
	Operator string `json:"operator"`
	OfferID  uint64 `json:"offer_id"`
	VectorID uint64 `json:"vector_id"`
}

type MsgDeleteOfferVectorResponse struct{}

// MsgDeleteAllOfferVectorsRequest clears every vector of an offer.
type MsgDeleteAllOfferVectorsRequest struct {
	Operator string `json:"operator"`
	OfferID  uint64 `json:"offer_id"`
}

// MsgDeleteAllOfferVectorsResponse returns the ids of the removed vectors.
type MsgDeleteAllOfferVectorsResponse struct {
	RemovedVectorIDs []uint64 `json:"removed_vector_ids"`
}

// MsgUpdateParams replaces the module params. Only the module authority may send it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func validateOperator(operator string) error {
	if _, err := sdk.AccAddressFromBech32(operator); err != nil {
		return fmt.Errorf("invalid operator address: %q: %w", operator, err)
	}
	return nil
}

func validateOfferID(id uint64) error {
	if id == 0 {
		return errors.New("offer id cannot be zero")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgCreateOfferRequest.
func (m MsgCreateOfferRequest) ValidateBasic() error {
	if err := validateOperator(m.Operator); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(m.TokenInDenom); err != nil {
		return fmt.Errorf("invalid token in denom: %q: %w", m.TokenInDenom, err)
	}
	if err := sdk.ValidateDenom(m.TokenOutDenom); err != nil {
		return fmt.Errorf("invalid token out denom: %q: %w", m.TokenOutDenom, err)
	}
	if m.TokenInDenom == m.TokenOutDenom {
		return fmt.Errorf("token in denom (%q) cannot equal token out denom (%q)", m.TokenInDenom, m.TokenOutDenom)
	}
	return ValidateFeeBasisPoints(m.FeeBasisPoints)
}

// ValidateBasic performs stateless validation of MsgCloseOfferRequest.
func (m MsgCloseOfferRequest) ValidateBasic() error {
	if err := validateOperator(m.Operator); err != nil {
		return err
	}
	return validateOfferID(m.OfferID)
}

// ValidateBasic performs stateless validation of MsgUpdateOfferFeeRequest.
func (m MsgUpdateOfferFeeRequest) ValidateBasic() error {
	if err := validateOperator(m.Operator); err != nil {
		return err
	}
	if err := validateOfferID(m.OfferID); err != nil {
		return err
	}
	return ValidateFeeBasisPoints(m.FeeBasisPoints)
}

// Vector returns the requested vector without an id.
func (m MsgAddOfferVectorRequest) Vector() Vector {
	return Vector{
		StartTime:        m.StartTime,
		BaseTime:         m.BaseTime,
		BasePrice:        m.BasePrice,
		APR:              m.APR,
		PriceFixDuration: m.PriceFixDuration,
	}
}

// ValidateBasic performs stateless validation of MsgAddOfferVectorRequest.
func (m MsgAddOfferVectorRequest) ValidateBasic() error {
	if err := validateOperator(m.Operator); err != nil {
		return err
	}
	if err := validateOfferID(m.OfferID); err != nil {
		return err
	}
	return m.Vector().ValidateParams()
}

// ValidateBasic performs stateless validation of MsgDeleteOfferVectorRequest.
func (m MsgDeleteOfferVectorRequest) ValidateBasic() error {
	if err := validateOperator(m.Operator); err != nil {
		return err
	}
	if err := validateOfferID(m.OfferID); err != nil {
		return err
	}
	if m.VectorID == 0 {
		return ErrInvalidVectorID.Wrap("vector id cannot be zero")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgDeleteAllOfferVectorsRequest.
func (m MsgDeleteAllOfferVectorsRequest) ValidateBasic() error {
	if err := validateOperator(m.Operator); err != nil {
		return err
	}
	return validateOfferID(m.OfferID)
}

// ValidateBasic performs stateless validation of MsgUpdateParams.
func (m MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %q: %w", m.Authority, err)
	}
	return m.Params.Validate()
}
