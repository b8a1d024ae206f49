package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/provlabs/offers/types"
)

// GetParams returns the module params, falling back to the defaults when none are stored.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams(), nil
	}
	return params, err
}

// SetParams validates and stores the module params.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}

// ValidateOperator returns an error unless addr is the configured operator.
func (k Keeper) ValidateOperator(ctx context.Context, addr string) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.Operator == "" {
		return types.ErrUnauthorized.Wrap("no operator configured")
	}
	if params.Operator != addr {
		return types.ErrUnauthorized.Wrapf("%s is not the operator", addr)
	}
	return nil
}

// ValidateAuthority returns an error unless addr is the module authority.
func (k Keeper) ValidateAuthority(addr string) error {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil {
		return types.ErrUnauthorized.Wrapf("invalid authority address %q: %v", addr, err)
	}
	authority, err := k.addressCodec.BytesToString(k.authority)
	if err != nil {
		return err
	}
	if string(bz) != string(k.authority) {
		return types.ErrUnauthorized.Wrapf("expected %s got %s", authority, addr)
	}
	return nil
}
