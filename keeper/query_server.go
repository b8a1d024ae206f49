package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/provlabs/offers/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// queryError maps keeper errors onto grpc status codes.
func queryError(err error) error {
	switch {
	case errors.Is(err, types.ErrOfferNotFound), errors.Is(err, types.ErrVectorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, types.ErrNoActiveVector):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, types.ErrMathOverflow), errors.Is(err, types.ErrResultOverflow),
		errors.Is(err, types.ErrDivByZero), errors.Is(err, types.ErrTimeBeforeBaseTime):
		return status.Error(codes.OutOfRange, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func requireOfferID(id uint64) error {
	if id == 0 {
		return status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	return nil
}

// Params returns the module params.
func (k queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Offers returns a paginated list of all offers.
func (k queryServer) Offers(ctx context.Context, req *types.QueryOffersRequest) (*types.QueryOffersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	offers, pageRes, err := query.CollectionPaginate(
		ctx,
		k.Keeper.Offers,
		req.Pagination,
		func(_ uint64, offer types.Offer) (types.Offer, error) {
			return offer, nil
		},
	)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryOffersResponse{
		Offers:     offers,
		Pagination: pageRes,
	}, nil
}

// Offer returns a single offer by id.
func (k queryServer) Offer(ctx context.Context, req *types.QueryOfferRequest) (*types.QueryOfferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}

	offer, err := k.GetOffer(ctx, req.OfferID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryOfferResponse{Offer: offer}, nil
}

// OfferByPair returns the offer trading the given denoms.
func (k queryServer) OfferByPair(ctx context.Context, req *types.QueryOfferByPairRequest) (*types.QueryOfferResponse, error) {
	if req == nil || req.TokenInDenom == "" || req.TokenOutDenom == "" {
		return nil, status.Error(codes.InvalidArgument, "token_in_denom and token_out_denom must be provided")
	}

	offer, err := k.GetOfferByPair(ctx, req.TokenInDenom, req.TokenOutDenom)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryOfferResponse{Offer: offer}, nil
}

// ActiveVector returns the vector in force at the requested time.
func (k queryServer) ActiveVector(ctx context.Context, req *types.QueryActiveVectorRequest) (*types.QueryActiveVectorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}

	t := req.Time
	if t == 0 {
		t = k.blockTime(ctx)
	}
	active, preceding, err := k.GetActiveVector(ctx, req.OfferID, t)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryActiveVectorResponse{Vector: active, Preceding: preceding}, nil
}

// CurrentPrice returns the NAV of an offer at the block time.
func (k queryServer) CurrentPrice(ctx context.Context, req *types.QueryCurrentPriceRequest) (*types.QueryCurrentPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}

	quote, err := k.Keeper.CurrentPrice(ctx, req.OfferID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryCurrentPriceResponse{
		Price:               quote.Price,
		VectorID:            quote.Vector.VectorID,
		NextPriceChangeTime: quote.NextPriceChangeTime,
	}, nil
}

// NavAdjustment returns the price discontinuity at the last vector hand-off.
func (k queryServer) NavAdjustment(ctx context.Context, req *types.QueryNavAdjustmentRequest) (*types.QueryNavAdjustmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}

	current, previous, delta, err := k.Keeper.NavAdjustment(ctx, req.OfferID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryNavAdjustmentResponse{CurrentPrice: current, PreviousPrice: previous, Delta: delta}, nil
}

// TVL returns the value of the circulating token out supply.
func (k queryServer) TVL(ctx context.Context, req *types.QueryTVLRequest) (*types.QueryTVLResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}

	val, err := k.Keeper.TVL(ctx, req.OfferID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryTVLResponse{CirculatingSupply: val.CirculatingSupply, Price: val.Price, TVL: val.TVL}, nil
}

// APY returns the yield of the active vector.
func (k queryServer) APY(ctx context.Context, req *types.QueryAPYRequest) (*types.QueryAPYResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}

	apr, apy, continuous, err := k.Keeper.APY(ctx, req.OfferID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryAPYResponse{APR: apr, APY: apy, ContinuousAPY: continuous.String()}, nil
}

// EstimateTakeOffer quotes the token out received for an amount of token in.
func (k queryServer) EstimateTakeOffer(ctx context.Context, req *types.QueryEstimateTakeOfferRequest) (*types.QueryEstimateTakeOfferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "offer_id must be provided")
	}
	if err := requireOfferID(req.OfferID); err != nil {
		return nil, err
	}
	if req.AmountIn == 0 {
		return nil, status.Error(codes.InvalidArgument, "amount_in must be positive")
	}

	fee, out, price, err := k.Keeper.EstimateTakeOffer(ctx, req.OfferID, req.AmountIn)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryEstimateTakeOfferResponse{Fee: fee, AmountOut: out, Price: price}, nil
}
