package types

import (
	fmt "fmt"
)

// GenesisState defines the offers module's genesis state.
type GenesisState struct {
	Params        Params  `json:"params"`
	Offers        []Offer `json:"offers"`
	OfferSequence uint64  `json:"offer_sequence"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Offers: []Offer{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	ids := make(map[uint64]struct{}, len(gs.Offers))
	pairs := make(map[string]struct{}, len(gs.Offers))
	for i, offer := range gs.Offers {
		if err := offer.Validate(); err != nil {
			return fmt.Errorf("invalid offer at index %d: %w", i, err)
		}
		if _, ok := ids[offer.ID]; ok {
			return fmt.Errorf("duplicate offer id %d", offer.ID)
		}
		if _, ok := pairs[offer.Pair()]; ok {
			return fmt.Errorf("duplicate offer pair %s", offer.Pair())
		}
		if offer.ID > gs.OfferSequence {
			return fmt.Errorf("offer id %d exceeds offer sequence %d", offer.ID, gs.OfferSequence)
		}
		ids[offer.ID] = struct{}{}
		pairs[offer.Pair()] = struct{}{}
	}
	return nil
}
