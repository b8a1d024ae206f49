package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/offers/queue"
	"github.com/provlabs/offers/types"
)

// PairKey is the (token in, token out) denom pair an offer trades.
type PairKey = collections.Pair[string, string]

// OfferIndexes defines the secondary indexes of the offers collection.
type OfferIndexes struct {
	ByPair *indexes.Unique[PairKey, uint64, types.Offer]
}

// IndexesList returns the list of indexes for the offers collection.
func (i OfferIndexes) IndexesList() []collections.Index[uint64, types.Offer] {
	return []collections.Index[uint64, types.Offer]{i.ByPair}
}

// NewOfferIndexes creates the offer indexes.
func NewOfferIndexes(sb *collections.SchemaBuilder) OfferIndexes {
	return OfferIndexes{
		ByPair: indexes.NewUnique(
			sb,
			types.OffersByPairIndexPrefix,
			types.OffersByPairIndexName,
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.Uint64Key,
			func(_ uint64, offer types.Offer) (PairKey, error) {
				return collections.Join(offer.TokenInDenom, offer.TokenOutDenom), nil
			},
		),
	}
}

type Keeper struct {
	schema       collections.Schema
	eventService event.Service
	addressCodec address.Codec
	authority    []byte

	BankKeeper types.BankKeeper

	Params          collections.Item[types.Params]
	Offers          *collections.IndexedMap[uint64, types.Offer, OfferIndexes]
	OfferSequence   collections.Sequence
	ActivationQueue *queue.ActivationQueue
}

func NewKeeper(
	storeService store.KVStoreService,
	eventService event.Service,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		eventService: eventService,
		addressCodec: addressCodec,
		authority:    authority,
		BankKeeper:   bankKeeper,
		Params:       collections.NewItem(builder, types.ParamsKeyPrefix, types.ParamsName, types.JSONValueCodec[types.Params]{}),
		Offers: collections.NewIndexedMap(
			builder,
			types.OffersKeyPrefix,
			types.OffersName,
			collections.Uint64Key,
			types.OfferValueCodec{},
			NewOfferIndexes(builder),
		),
		OfferSequence:   collections.NewSequence(builder, types.OfferSequencePrefix, types.OfferSequenceName),
		ActivationQueue: queue.NewActivationQueue(builder),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// getLogger returns a logger with offers module context.
func (k Keeper) getLogger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// blockTime returns the current block time in unix seconds.
func (k Keeper) blockTime(ctx context.Context) int64 {
	return sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
}

// emitEvent emits a typed event. Failures are logged and never fail the caller.
func (k Keeper) emitEvent(ctx context.Context, e types.Event) {
	if err := k.eventService.EventManager(ctx).EmitKV(ctx, e.Type, e.Attributes...); err != nil {
		k.getLogger(ctx).Error("failed to emit event", "type", e.Type, "err", err)
	}
}
