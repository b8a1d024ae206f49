package keeper

import (
	"context"

	"github.com/provlabs/offers/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// CreateOffer opens a new offer for a token pair.
func (k msgServer) CreateOffer(ctx context.Context, msg *types.MsgCreateOfferRequest) (*types.MsgCreateOfferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.ValidateOperator(ctx, msg.Operator); err != nil {
		return nil, err
	}

	offer, err := k.Keeper.CreateOffer(ctx, msg.TokenInDenom, msg.TokenOutDenom, msg.FeeBasisPoints)
	if err != nil {
		return nil, err
	}

	k.emitEvent(ctx, types.NewEventOfferCreated(offer, msg.Operator))
	return &types.MsgCreateOfferResponse{OfferID: offer.ID}, nil
}

// CloseOffer removes an offer together with its vectors.
func (k msgServer) CloseOffer(ctx context.Context, msg *types.MsgCloseOfferRequest) (*types.MsgCloseOfferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.ValidateOperator(ctx, msg.Operator); err != nil {
		return nil, err
	}

	offer, err := k.Keeper.CloseOffer(ctx, msg.OfferID)
	if err != nil {
		return nil, err
	}

	k.emitEvent(ctx, types.NewEventOfferClosed(offer, msg.Operator))
	return &types.MsgCloseOfferResponse{}, nil
}

// UpdateOfferFee changes the fee charged by an offer.
func (k msgServer) UpdateOfferFee(ctx context.Context, msg *types.MsgUpdateOfferFeeRequest) (*types.MsgUpdateOfferFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.ValidateOperator(ctx, msg.Operator); err != nil {
		return nil, err
	}

	before, err := k.Keeper.UpdateOfferFee(ctx, msg.OfferID, msg.FeeBasisPoints)
	if err != nil {
		return nil, err
	}

	k.emitEvent(ctx, types.NewEventOfferFeeUpdated(msg.OfferID, before, msg.FeeBasisPoints, msg.Operator))
	return &types.MsgUpdateOfferFeeResponse{}, nil
}

// AddOfferVector inserts a pricing vector and retires the vectors it makes unreachable.
func (k msgServer) AddOfferVector(ctx context.Context, msg *types.MsgAddOfferVectorRequest) (*types.MsgAddOfferVectorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.ValidateOperator(ctx, msg.Operator); err != nil {
		return nil, err
	}

	inserted, retired, err := k.AddVector(ctx, msg.OfferID, msg.Vector())
	if err != nil {
		return nil, err
	}

	retiredIDs := make([]uint64, len(retired))
	for i, r := range retired {
		retiredIDs[i] = r.VectorID
	}
	return &types.MsgAddOfferVectorResponse{VectorID: inserted.VectorID, RetiredVectorIDs: retiredIDs}, nil
}

// DeleteOfferVector removes a single vector from an offer.
func (k msgServer) DeleteOfferVector(ctx context.Context, msg *types.MsgDeleteOfferVectorRequest) (*types.MsgDeleteOfferVectorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.ValidateOperator(ctx, msg.Operator); err != nil {
		return nil, err
	}

	if _, err := k.DeleteVector(ctx, msg.OfferID, msg.VectorID); err != nil {
		return nil, err
	}
	return &types.MsgDeleteOfferVectorResponse{}, nil
}

// DeleteAllOfferVectors clears every vector of an offer.
func (k msgServer) DeleteAllOfferVectors(ctx context.Context, msg *types.MsgDeleteAllOfferVectorsRequest) (*types.MsgDeleteAllOfferVectorsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.ValidateOperator(ctx, msg.Operator); err != nil {
		return nil, err
	}

	removed, err := k.DeleteAllVectors(ctx, msg.OfferID)
	if err != nil {
		return nil, err
	}

	removedIDs := make([]uint64, len(removed))
	for i, r := range removed {
		removedIDs[i] = r.VectorID
	}
	return &types.MsgDeleteAllOfferVectorsResponse{RemovedVectorIDs: removedIDs}, nil
}

// UpdateParams updates the params for the module.
func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := k.ValidateAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}

	before, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	k.emitEvent(ctx, types.NewEventParamsUpdated(msg.Authority, before, msg.Params))
	return &types.MsgUpdateParamsResponse{}, nil
}
