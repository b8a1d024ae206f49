package types

import (
	fmt "fmt"

	"cosmossdk.io/collections"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "offers"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	// See: https://github.com/cosmos/cosmos-sdk/blob/v0.52.0-beta.2/x/gov/types/keys.go#L9
	GovModuleName = "gov"
)

var (
	// ParamsKeyPrefix is the prefix to retrieve all Params
	ParamsKeyPrefix = collections.NewPrefix(0)
	// ParamsName is a human-readable name for the params collection.
	ParamsName = "params"
	// OffersKeyPrefix is the prefix to retrieve all Offers
	OffersKeyPrefix = collections.NewPrefix(1)
	// OffersName is a human-readable name for the offers collection.
	OffersName = "offers"
	// OffersByPairIndexPrefix is the prefix of the unique (token in, token out) index.
	OffersByPairIndexPrefix = collections.NewPrefix(2)
	// OffersByPairIndexName is a human-readable name for the offers by pair index.
	OffersByPairIndexName = "offers_by_pair"
	// OfferSequencePrefix is the prefix of the offer id sequence.
	OfferSequencePrefix = collections.NewPrefix(3)
	// OfferSequenceName is a human-readable name for the offer id sequence.
	OfferSequenceName = "offer_sequence"
	// VectorActivationQueuePrefix is the prefix of the future vector activation queue.
	VectorActivationQueuePrefix = collections.NewPrefix(4)
	// VectorActivationQueueName is a human-readable name for the activation queue.
	VectorActivationQueueName = "vector_activation_queue"
)

// GetOfferAddress returns the deterministic account address for the given offer id.
func GetOfferAddress(offerID uint64) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(fmt.Sprintf("%s/%d", ModuleName, offerID))))
}
