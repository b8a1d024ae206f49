package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the module parameters.
type Params struct {
	// Operator is the only account allowed to create offers and mutate their vectors.
	// An empty operator disables all mutations.
	Operator string `json:"operator"`
}

// DefaultParams returns params with no operator set.
func DefaultParams() Params {
	return Params{}
}

// Validate performs basic validation of the params.
func (p Params) Validate() error {
	if p.Operator == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(p.Operator); err != nil {
		return fmt.Errorf("invalid operator address: %q: %w", p.Operator, err)
	}
	return nil
}
