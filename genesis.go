package offers

import (
	"encoding/json"
	"fmt"

	"github.com/provlabs/offers/types"
)

// ParseGenesis decodes and validates a raw offers genesis state.
func ParseGenesis(bz json.RawMessage) (*types.GenesisState, error) {
	var genesis types.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	if err := genesis.Validate(); err != nil {
		return nil, err
	}
	return &genesis, nil
}

// MustMarshalGenesis encodes a genesis state, panicking on failure.
func MustMarshalGenesis(genesis *types.GenesisState) json.RawMessage {
	bz, err := json.Marshal(genesis)
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s genesis state: %w", types.ModuleName, err))
	}
	return bz
}
