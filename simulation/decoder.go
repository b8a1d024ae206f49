package simulation

import (
	"bytes"
	"fmt"

	"cosmossdk.io/collections"

	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/provlabs/offers/types"
)

// NewDecodeStore returns a decoder function closure that unmarshals the KVPair's
// values of the offers store to the corresponding type.
func NewDecodeStore() func(kvA, kvB kv.Pair) string {
	return func(kvA, kvB kv.Pair) string {
		switch {
		case bytes.HasPrefix(kvA.Key, types.ParamsKeyPrefix.Bytes()):
			return fmt.Sprintf("%s\n%s", kvA.Value, kvB.Value)

		case bytes.HasPrefix(kvA.Key, types.OffersKeyPrefix.Bytes()):
			codec := types.OfferValueCodec{}
			return fmt.Sprintf("%s\n%s", decodeWith(codec.Decode, codec.Stringify, kvA.Value), decodeWith(codec.Decode, codec.Stringify, kvB.Value))

		case bytes.HasPrefix(kvA.Key, types.OfferSequencePrefix.Bytes()):
			codec := collections.Uint64Value
			return fmt.Sprintf("%s\n%s", decodeWith(codec.Decode, codec.Stringify, kvA.Value), decodeWith(codec.Decode, codec.Stringify, kvB.Value))

		case bytes.HasPrefix(kvA.Key, types.OffersByPairIndexPrefix.Bytes()),
			bytes.HasPrefix(kvA.Key, types.VectorActivationQueuePrefix.Bytes()):
			return fmt.Sprintf("%X\n%X", kvA.Key, kvB.Key)

		default:
			panic(fmt.Sprintf("invalid offers key prefix %X", kvA.Key[:1]))
		}
	}
}

func decodeWith[T any](decode func([]byte) (T, error), stringify func(T) string, bz []byte) string {
	v, err := decode(bz)
	if err != nil {
		return fmt.Sprintf("<undecodable: %s>", err)
	}
	return stringify(v)
}
