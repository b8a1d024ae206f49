package keeper_test

import (
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/query"

	markertypes "github.com/provenance-io/provenance/x/marker/types"

	"github.com/provlabs/offers/keeper"
	"github.com/provlabs/offers/types"
	querytest "github.com/provlabs/offers/utils/query"
)

func (s *TestSuite) TestQueryServer_Params() {
	testDef := querytest.TestDef[types.QueryParamsRequest, types.QueryParamsResponse]{
		QueryName: "Params",
		Query:     keeper.NewQueryServer(s.k).Params,
	}

	tests := []querytest.TestCase[types.QueryParamsRequest, types.QueryParamsResponse]{
		{
			Name:         "configured operator",
			Req:          &types.QueryParamsRequest{},
			ExpectedResp: &types.QueryParamsResponse{Params: types.Params{Operator: s.operator}},
		},
		{
			Name:               "nil request",
			Req:                nil,
			ExpectedErrSubstrs: []string{"invalid request"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_Offers() {
	testDef := querytest.TestDef[types.QueryOffersRequest, types.QueryOffersResponse]{
		QueryName: "Offers",
		Query:     keeper.NewQueryServer(s.k).Offers,
		ManualEquality: func(s querytest.TestSuiter, expected, actual *types.QueryOffersResponse) {
			s.Require().NotNil(actual, "actual response should not be nil")
			if len(expected.Offers) == 0 {
				s.Assert().Empty(actual.Offers, "offers")
			} else {
				s.Assert().Equal(expected.Offers, actual.Offers, "offers")
			}
			if expected.Pagination != nil {
				s.Require().NotNil(actual.Pagination, "pagination")
				s.Assert().Equal(expected.Pagination.Total, actual.Pagination.Total, "pagination total")
				s.Assert().Equal(len(expected.Pagination.NextKey) > 0, len(actual.Pagination.NextKey) > 0, "pagination next key presence")
			}
		},
	}

	first := types.NewOffer(1, tokenIn, tokenOut, 0)
	second := types.NewOffer(2, tokenOut, tokenIn, 10)
	third := types.NewOffer(3, "uother", tokenOut, 20)
	setupOffers := func() {
		for _, o := range []types.Offer{first, second, third} {
			_, err := s.k.CreateOffer(s.ctx, o.TokenInDenom, o.TokenOutDenom, o.FeeBasisPoints)
			s.Require().NoError(err, "CreateOffer(%s)", o.Pair())
		}
	}

	tests := []querytest.TestCase[types.QueryOffersRequest, types.QueryOffersResponse]{
		{
			Name:         "no offers",
			Req:          &types.QueryOffersRequest{},
			ExpectedResp: &types.QueryOffersResponse{Offers: []types.Offer{}},
		},
		{
			Name:         "all offers",
			Setup:        setupOffers,
			Req:          &types.QueryOffersRequest{},
			ExpectedResp: &types.QueryOffersResponse{Offers: []types.Offer{first, second, third}},
		},
		{
			Name:  "first page with total",
			Setup: setupOffers,
			Req:   &types.QueryOffersRequest{Pagination: &query.PageRequest{Limit: 2, CountTotal: true}},
			ExpectedResp: &types.QueryOffersResponse{
				Offers:     []types.Offer{first, second},
				Pagination: &query.PageResponse{NextKey: []byte{1}, Total: 3},
			},
		},
		{
			Name:               "nil request",
			Req:                nil,
			ExpectedErrSubstrs: []string{"invalid request"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_Offer() {
	testDef := querytest.TestDef[types.QueryOfferRequest, types.QueryOfferResponse]{
		QueryName: "Offer",
		Query:     keeper.NewQueryServer(s.k).Offer,
	}

	expected := types.NewOffer(1, tokenIn, tokenOut, 15)
	setup := func() {
		_, err := s.k.CreateOffer(s.ctx, tokenIn, tokenOut, 15)
		s.Require().NoError(err, "CreateOffer")
	}

	tests := []querytest.TestCase[types.QueryOfferRequest, types.QueryOfferResponse]{
		{
			Name:         "offer found",
			Setup:        setup,
			Req:          &types.QueryOfferRequest{OfferID: 1},
			ExpectedResp: &types.QueryOfferResponse{Offer: expected},
		},
		{
			Name:               "offer not found",
			Setup:              setup,
			Req:                &types.QueryOfferRequest{OfferID: 2},
			ExpectedErrSubstrs: []string{"NotFound", "offer not found"},
		},
		{
			Name:               "zero id",
			Req:                &types.QueryOfferRequest{},
			ExpectedErrSubstrs: []string{"offer_id must be provided"},
		},
		{
			Name:               "nil request",
			Req:                nil,
			ExpectedErrSubstrs: []string{"offer_id must be provided"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_OfferByPair() {
	testDef := querytest.TestDef[types.QueryOfferByPairRequest, types.QueryOfferResponse]{
		QueryName: "OfferByPair",
		Query:     keeper.NewQueryServer(s.k).OfferByPair,
	}

	setup := func() {
		_, err := s.k.CreateOffer(s.ctx, tokenIn, tokenOut, 0)
		s.Require().NoError(err, "CreateOffer")
	}

	tests := []querytest.TestCase[types.QueryOfferByPairRequest, types.QueryOfferResponse]{
		{
			Name:         "offer found",
			Setup:        setup,
			Req:          &types.QueryOfferByPairRequest{TokenInDenom: tokenIn, TokenOutDenom: tokenOut},
			ExpectedResp: &types.QueryOfferResponse{Offer: types.NewOffer(1, tokenIn, tokenOut, 0)},
		},
		{
			Name:               "reversed pair is a different offer",
			Setup:              setup,
			Req:                &types.QueryOfferByPairRequest{TokenInDenom: tokenOut, TokenOutDenom: tokenIn},
			ExpectedErrSubstrs: []string{"offer not found"},
		},
		{
			Name:               "missing denom",
			Req:                &types.QueryOfferByPairRequest{TokenInDenom: tokenIn},
			ExpectedErrSubstrs: []string{"token_in_denom and token_out_denom must be provided"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_ActiveVector() {
	testDef := querytest.TestDef[types.QueryActiveVectorRequest, types.QueryActiveVectorResponse]{
		QueryName: "ActiveVector",
		Query:     keeper.NewQueryServer(s.k).ActiveVector,
	}

	past := testVector(now - day)
	past.VectorID = 1
	future := testVector(now + day)
	future.VectorID = 2
	setup := func() {
		offer := s.requireOffer(0)
		s.requireVector(offer.ID, past.StartTime)
		s.requireVector(offer.ID, future.StartTime)
	}

	tests := []querytest.TestCase[types.QueryActiveVectorRequest, types.QueryActiveVectorResponse]{
		{
			Name:         "at block time",
			Setup:        setup,
			Req:          &types.QueryActiveVectorRequest{OfferID: 1},
			ExpectedResp: &types.QueryActiveVectorResponse{Vector: past},
		},
		{
			Name:         "at a future time",
			Setup:        setup,
			Req:          &types.QueryActiveVectorRequest{OfferID: 1, Time: now + 2*day},
			ExpectedResp: &types.QueryActiveVectorResponse{Vector: future, Preceding: &past},
		},
		{
			Name:               "before any vector",
			Setup:              setup,
			Req:                &types.QueryActiveVectorRequest{OfferID: 1, Time: now - 2*day},
			ExpectedErrSubstrs: []string{"FailedPrecondition", "no active vector"},
		},
		{
			Name:               "unknown offer",
			Req:                &types.QueryActiveVectorRequest{OfferID: 5},
			ExpectedErrSubstrs: []string{"offer not found"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_Valuation() {
	srv := keeper.NewQueryServer(s.k)
	offer := s.requireOffer(25)
	s.requireVector(offer.ID, now-day)

	markerAddr, err := markertypes.MarkerAddress(tokenOut)
	s.Require().NoError(err, "MarkerAddress(%q)", tokenOut)
	s.bank.SetSupply(tokenOut, sdkmath.NewInt(2_000_000))
	s.bank.SetBalance(markerAddr, tokenOut, sdkmath.NewInt(1_000_000))

	price, err := srv.CurrentPrice(s.ctx, &types.QueryCurrentPriceRequest{OfferID: offer.ID})
	s.Require().NoError(err, "CurrentPrice")
	s.Assert().Equal(&types.QueryCurrentPriceResponse{Price: 1_000_100_000, VectorID: 1, NextPriceChangeTime: now + day}, price, "current price")

	nav, err := srv.NavAdjustment(s.ctx, &types.QueryNavAdjustmentRequest{OfferID: offer.ID})
	s.Require().NoError(err, "NavAdjustment")
	s.Assert().Equal(&types.QueryNavAdjustmentResponse{CurrentPrice: 1_000_100_000, Delta: 1_000_100_000}, nav, "nav adjustment")

	tvl, err := srv.TVL(s.ctx, &types.QueryTVLRequest{OfferID: offer.ID})
	s.Require().NoError(err, "TVL")
	s.Assert().Equal(&types.QueryTVLResponse{CirculatingSupply: 1_000_000, Price: 1_000_100_000, TVL: 1_000_100}, tvl, "tvl")

	apy, err := srv.APY(s.ctx, &types.QueryAPYRequest{OfferID: offer.ID})
	s.Require().NoError(err, "APY")
	s.Assert().Equal(uint64(36_500), apy.APR, "apr")
	s.Assert().Equal(uint64(37_172), apy.APY, "apy")
	s.Assert().True(strings.HasPrefix(apy.ContinuousAPY, "0.0371"), "continuous apy %s", apy.ContinuousAPY)

	take, err := srv.EstimateTakeOffer(s.ctx, &types.QueryEstimateTakeOfferRequest{OfferID: offer.ID, AmountIn: 1_000_000})
	s.Require().NoError(err, "EstimateTakeOffer")
	s.Assert().Equal(&types.QueryEstimateTakeOfferResponse{Fee: 2_500, AmountOut: 997_400, Price: 1_000_100_000}, take, "take offer estimate")

	_, err = srv.EstimateTakeOffer(s.ctx, &types.QueryEstimateTakeOfferRequest{OfferID: offer.ID})
	s.Require().ErrorContains(err, "amount_in must be positive", "zero amount")

	_, err = srv.TVL(s.ctx, &types.QueryTVLRequest{OfferID: 9})
	s.Require().ErrorContains(err, "offer not found", "unknown offer")

	_, err = srv.CurrentPrice(s.ctx, nil)
	s.Require().ErrorContains(err, "offer_id must be provided", "nil request")
}
