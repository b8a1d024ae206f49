package simulation

import (
	"fmt"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"github.com/provlabs/offers/keeper"
	"github.com/provlabs/offers/types"
)

const (
	OpWeightMsgCreateOffer           = "op_weight_msg_create_offer"
	OpWeightMsgCloseOffer            = "op_weight_msg_close_offer"
	OpWeightMsgUpdateOfferFee        = "op_weight_msg_update_offer_fee"
	OpWeightMsgAddOfferVector        = "op_weight_msg_add_offer_vector"
	OpWeightMsgDeleteOfferVector     = "op_weight_msg_delete_offer_vector"
	OpWeightMsgDeleteAllOfferVectors = "op_weight_msg_delete_all_offer_vectors"
)

const (
	DefaultWeightMsgCreateOffer           = 10
	DefaultWeightMsgCloseOffer            = 2
	DefaultWeightMsgUpdateOfferFee        = 10
	DefaultWeightMsgAddOfferVector        = 50
	DefaultWeightMsgDeleteOfferVector     = 10
	DefaultWeightMsgDeleteAllOfferVectors = 1
)

const (
	MsgCreateOffer           = "create_offer"
	MsgCloseOffer            = "close_offer"
	MsgUpdateOfferFee        = "update_offer_fee"
	MsgAddOfferVector        = "add_offer_vector"
	MsgDeleteOfferVector     = "delete_offer_vector"
	MsgDeleteAllOfferVectors = "delete_all_offer_vectors"
)

func WeightedOperations(simState module.SimulationState, k *keeper.Keeper) simulation.WeightedOperations {
	var (
		wCreateOffer           int
		wCloseOffer            int
		wUpdateOfferFee        int
		wAddOfferVector        int
		wDeleteOfferVector     int
		wDeleteAllOfferVectors int
	)

	simState.AppParams.GetOrGenerate(OpWeightMsgCreateOffer, &wCreateOffer, simState.Rand, func(r *rand.Rand) { wCreateOffer = DefaultWeightMsgCreateOffer })
	simState.AppParams.GetOrGenerate(OpWeightMsgCloseOffer, &wCloseOffer, simState.Rand, func(r *rand.Rand) { wCloseOffer = DefaultWeightMsgCloseOffer })
	simState.AppParams.GetOrGenerate(OpWeightMsgUpdateOfferFee, &wUpdateOfferFee, simState.Rand, func(r *rand.Rand) { wUpdateOfferFee = DefaultWeightMsgUpdateOfferFee })
	simState.AppParams.GetOrGenerate(OpWeightMsgAddOfferVector, &wAddOfferVector, simState.Rand, func(r *rand.Rand) { wAddOfferVector = DefaultWeightMsgAddOfferVector })
	simState.AppParams.GetOrGenerate(OpWeightMsgDeleteOfferVector, &wDeleteOfferVector, simState.Rand, func(r *rand.Rand) { wDeleteOfferVector = DefaultWeightMsgDeleteOfferVector })
	simState.AppParams.GetOrGenerate(OpWeightMsgDeleteAllOfferVectors, &wDeleteAllOfferVectors, simState.Rand, func(r *rand.Rand) { wDeleteAllOfferVectors = DefaultWeightMsgDeleteAllOfferVectors })

	return simulation.WeightedOperations{
		simulation.NewWeightedOperation(wCreateOffer, SimulateMsgCreateOffer(k)),
		simulation.NewWeightedOperation(wCloseOffer, SimulateMsgCloseOffer(k)),
		simulation.NewWeightedOperation(wUpdateOfferFee, SimulateMsgUpdateOfferFee(k)),
		simulation.NewWeightedOperation(wAddOfferVector, SimulateMsgAddOfferVector(k)),
		simulation.NewWeightedOperation(wDeleteOfferVector, SimulateMsgDeleteOfferVector(k)),
		simulation.NewWeightedOperation(wDeleteAllOfferVectors, SimulateMsgDeleteAllOfferVectors(k)),
	}
}

func okMsg(name, comment string) simtypes.OperationMsg {
	return simtypes.OperationMsg{Route: types.ModuleName, Name: name, Comment: comment, OK: true}
}

// operator returns the configured operator. Operations are skipped while none is set.
func operator(ctx sdk.Context, k *keeper.Keeper) (string, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return "", err
	}
	if params.Operator == "" {
		return "", fmt.Errorf("no operator configured")
	}
	return params.Operator, nil
}

func SimulateMsgCreateOffer(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		op, err := operator(ctx, k)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgCreateOffer, err.Error()), nil, nil
		}

		msg := &types.MsgCreateOfferRequest{
			Operator:       op,
			TokenInDenom:   genRandomDenom(r, DenomLengthExp, "in"),
			TokenOutDenom:  genRandomDenom(r, DenomLengthExp, "out"),
			FeeBasisPoints: uint64(r.Intn(types.MaxFeeBasisPoints/10 + 1)),
		}

		handler := keeper.NewMsgServer(k)
		resp, err := handler.CreateOffer(ctx, msg)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgCreateOffer, err.Error()), nil, nil
		}

		return okMsg(MsgCreateOffer, fmt.Sprintf("offer %d", resp.OfferID)), nil, nil
	}
}

func SimulateMsgCloseOffer(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		op, err := operator(ctx, k)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgCloseOffer, err.Error()), nil, nil
		}
		offer, err := getRandomOffer(r, k, ctx)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgCloseOffer, err.Error()), nil, nil
		}

		msg := &types.MsgCloseOfferRequest{Operator: op, OfferID: offer.ID}

		handler := keeper.NewMsgServer(k)
		if _, err := handler.CloseOffer(ctx, msg); err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgCloseOffer, err.Error()), nil, nil
		}

		return okMsg(MsgCloseOffer, fmt.Sprintf("offer %d", offer.ID)), nil, nil
	}
}

func SimulateMsgUpdateOfferFee(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		op, err := operator(ctx, k)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgUpdateOfferFee, err.Error()), nil, nil
		}
		offer, err := getRandomOffer(r, k, ctx)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgUpdateOfferFee, err.Error()), nil, nil
		}

		msg := &types.MsgUpdateOfferFeeRequest{
			Operator:       op,
			OfferID:        offer.ID,
			FeeBasisPoints: uint64(r.Intn(types.MaxFeeBasisPoints + 1)),
		}

		handler := keeper.NewMsgServer(k)
		if _, err := handler.UpdateOfferFee(ctx, msg); err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgUpdateOfferFee, err.Error()), nil, nil
		}

		return okMsg(MsgUpdateOfferFee, fmt.Sprintf("offer %d fee %d", offer.ID, msg.FeeBasisPoints)), nil, nil
	}
}

func SimulateMsgAddOfferVector(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		op, err := operator(ctx, k)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgAddOfferVector, err.Error()), nil, nil
		}
		offer, err := getRandomOfferWithCondition(r, k, ctx, func(offer types.Offer) bool {
			return !offer.Vectors.IsFull()
		})
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgAddOfferVector, err.Error()), nil, nil
		}

		v := RandomVector(r, ctx.BlockTime().Unix())
		msg := &types.MsgAddOfferVectorRequest{
			Operator:         op,
			OfferID:          offer.ID,
			StartTime:        v.StartTime,
			BaseTime:         v.BaseTime,
			BasePrice:        v.BasePrice,
			APR:              v.APR,
			PriceFixDuration: v.PriceFixDuration,
		}

		handler := keeper.NewMsgServer(k)
		resp, err := handler.AddOfferVector(ctx, msg)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgAddOfferVector, err.Error()), nil, nil
		}

		return okMsg(MsgAddOfferVector, fmt.Sprintf("offer %d vector %d retired %v", offer.ID, resp.VectorID, resp.RetiredVectorIDs)), nil, nil
	}
}

func SimulateMsgDeleteOfferVector(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		op, err := operator(ctx, k)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgDeleteOfferVector, err.Error()), nil, nil
		}
		offer, err := getRandomOfferWithCondition(r, k, ctx, func(offer types.Offer) bool {
			return offer.Vectors.Len() > 0
		})
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgDeleteOfferVector, err.Error()), nil, nil
		}
		vectors := offer.Vectors.Vectors()
		target := vectors[r.Intn(len(vectors))]

		msg := &types.MsgDeleteOfferVectorRequest{Operator: op, OfferID: offer.ID, VectorID: target.VectorID}

		handler := keeper.NewMsgServer(k)
		if _, err := handler.DeleteOfferVector(ctx, msg); err != nil {
			// Deleting the predecessor of the active vector is refused.
			return simtypes.NoOpMsg(types.ModuleName, MsgDeleteOfferVector, err.Error()), nil, nil
		}

		return okMsg(MsgDeleteOfferVector, fmt.Sprintf("offer %d vector %d", offer.ID, target.VectorID)), nil, nil
	}
}

func SimulateMsgDeleteAllOfferVectors(k *keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context,
		accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		op, err := operator(ctx, k)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgDeleteAllOfferVectors, err.Error()), nil, nil
		}
		offer, err := getRandomOffer(r, k, ctx)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgDeleteAllOfferVectors, err.Error()), nil, nil
		}

		msg := &types.MsgDeleteAllOfferVectorsRequest{Operator: op, OfferID: offer.ID}

		handler := keeper.NewMsgServer(k)
		resp, err := handler.DeleteAllOfferVectors(ctx, msg)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, MsgDeleteAllOfferVectors, err.Error()), nil, nil
		}

		return okMsg(MsgDeleteAllOfferVectors, fmt.Sprintf("offer %d removed %v", offer.ID, resp.RemovedVectorIDs)), nil, nil
	}
}
