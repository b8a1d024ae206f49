package types

import (
	context "context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// MsgServer is the set of state transitions exposed by the offers module.
type MsgServer interface {
	CreateOffer(context.Context, *MsgCreateOfferRequest) (*MsgCreateOfferResponse, error)
	CloseOffer(context.Context, *MsgCloseOfferRequest) (*MsgCloseOfferResponse, error)
	UpdateOfferFee(context.Context, *MsgUpdateOfferFeeRequest) (*MsgUpdateOfferFeeResponse, error)
	AddOfferVector(context.Context, *MsgAddOfferVectorRequest) (*MsgAddOfferVectorResponse, error)
	DeleteOfferVector(context.Context, *MsgDeleteOfferVectorRequest) (*MsgDeleteOfferVectorResponse, error)
	DeleteAllOfferVectors(context.Context, *MsgDeleteAllOfferVectorsRequest) (*MsgDeleteAllOfferVectorsResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the set of read-only queries exposed by the offers module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Offers(context.Context, *QueryOffersRequest) (*QueryOffersResponse, error)
	Offer(context.Context, *QueryOfferRequest) (*QueryOfferResponse, error)
	OfferByPair(context.Context, *QueryOfferByPairRequest) (*QueryOfferResponse, error)
	ActiveVector(context.Context, *QueryActiveVectorRequest) (*QueryActiveVectorResponse, error)
	CurrentPrice(context.Context, *QueryCurrentPriceRequest) (*QueryCurrentPriceResponse, error)
	NavAdjustment(context.Context, *QueryNavAdjustmentRequest) (*QueryNavAdjustmentResponse, error)
	TVL(context.Context, *QueryTVLRequest) (*QueryTVLResponse, error)
	APY(context.Context, *QueryAPYRequest) (*QueryAPYResponse, error)
	EstimateTakeOffer(context.Context, *QueryEstimateTakeOfferRequest) (*QueryEstimateTakeOfferResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryOffersRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryOffersResponse struct {
	Offers     []Offer             `json:"offers"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryOfferRequest struct {
	OfferID uint64 `json:"offer_id"`
}

type QueryOfferByPairRequest struct {
	TokenInDenom  string `json:"token_in_denom"`
	TokenOutDenom string `json:"token_out_denom"`
}

type QueryOfferResponse struct {
	Offer Offer `json:"offer"`
}

// QueryActiveVectorRequest asks for the vector in force at Time. A zero Time means the block time.
type QueryActiveVectorRequest struct {
	OfferID uint64 `json:"offer_id"`
	Time    int64  `json:"time,omitempty"`
}

type QueryActiveVectorResponse struct {
	Vector Vector `json:"vector"`
	// Preceding is the vector the active one took over from, if any.
	Preceding *Vector `json:"preceding,omitempty"`
}

type QueryCurrentPriceRequest struct {
	OfferID uint64 `json:"offer_id"`
}

type QueryCurrentPriceResponse struct {
	Price               uint64 `json:"price"`
	VectorID            uint64 `json:"vector_id"`
	NextPriceChangeTime int64  `json:"next_price_change_time"`
}

type QueryNavAdjustmentRequest struct {
	OfferID uint64 `json:"offer_id"`
}

type QueryNavAdjustmentResponse struct {
	CurrentPrice  uint64 `json:"current_price"`
	PreviousPrice uint64 `json:"previous_price"`
	Delta         int64  `json:"delta"`
}

type QueryTVLRequest struct {
	OfferID uint64 `json:"offer_id"`
}

type QueryTVLResponse struct {
	CirculatingSupply uint64 `json:"circulating_supply"`
	Price             uint64 `json:"price"`
	TVL               uint64 `json:"tvl"`
}

type QueryAPYRequest struct {
	OfferID uint64 `json:"offer_id"`
}

type QueryAPYResponse struct {
	APR uint64 `json:"apr"`
	APY uint64 `json:"apy"`
	// ContinuousAPY is the continuously compounded yield for the same APR, as a decimal fraction.
	ContinuousAPY string `json:"continuous_apy"`
}

type QueryEstimateTakeOfferRequest struct {
	OfferID  uint64 `json:"offer_id"`
	AmountIn uint64 `json:"amount_in"`
}

type QueryEstimateTakeOfferResponse struct {
	Fee       uint64 `json:"fee"`
	AmountOut uint64 `json:"amount_out"`
	Price     uint64 `json:"price"`
}
