package mocks

import (
	"context"
	"fmt"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/provlabs/offers/keeper"
	"github.com/provlabs/offers/types"
	"github.com/provlabs/offers/utils"
)

// NewOffersKeeper returns an instance of the Keeper backed by an in-memory store
// and a BankKeeper whose supply and balances are set by the test.
func NewOffersKeeper(
	t testing.TB,
) (sdk.Context, *keeper.Keeper, *BankKeeper) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	bank := NewBankKeeper()
	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		runtime.ProvideEventService(),
		addresscodec.NewBech32Codec(utils.Bech32Prefix),
		authtypes.NewModuleAddress(govtypes.ModuleName),
		bank,
	)

	ctx := wrapper.Ctx.WithBlockTime(time.Unix(1_700_000_000, 0).UTC())
	return ctx, k, bank
}

// BankKeeper is an in-memory types.BankKeeper.
type BankKeeper struct {
	supply   map[string]sdkmath.Int
	balances map[string]sdkmath.Int
}

var _ types.BankKeeper = &BankKeeper{}

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		supply:   map[string]sdkmath.Int{},
		balances: map[string]sdkmath.Int{},
	}
}

func balanceKey(addr sdk.AccAddress, denom string) string {
	return addr.String() + "/" + denom
}

// SetSupply sets the total supply of denom.
func (b *BankKeeper) SetSupply(denom string, amount sdkmath.Int) {
	b.supply[denom] = amount
}

// SetBalance sets the balance of denom held by addr.
func (b *BankKeeper) SetBalance(addr sdk.AccAddress, denom string, amount sdkmath.Int) {
	b.balances[balanceKey(addr, denom)] = amount
}

func (b *BankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	if amt, ok := b.supply[denom]; ok {
		return sdk.NewCoin(denom, amt)
	}
	return sdk.NewCoin(denom, sdkmath.ZeroInt())
}

func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	if amt, ok := b.balances[balanceKey(addr, denom)]; ok {
		return sdk.NewCoin(denom, amt)
	}
	return sdk.NewCoin(denom, sdkmath.ZeroInt())
}
