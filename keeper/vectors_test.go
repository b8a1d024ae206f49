package keeper_test

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/offers/types"
)

func (s *TestSuite) TestAddVector_StartingNow() {
	offer := s.requireOffer(0)
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	v, retired, err := s.k.AddVector(s.ctx, offer.ID, testVector(now))
	s.Require().NoError(err, "AddVector")
	s.Assert().Equal(uint64(1), v.VectorID, "first vector id")
	s.Assert().Empty(retired, "nothing to retire")

	has, err := s.k.ActivationQueue.Has(s.ctx, now, offer.ID, v.VectorID)
	s.Require().NoError(err, "ActivationQueue.Has")
	s.Assert().False(has, "a vector starting now is not scheduled")

	added := findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorAdded)
	s.Require().Len(added, 1, "vector_added events")
	s.Assert().Equal("1", attribute(added[0], types.AttributeKeyVectorID), "event vector id")
	s.Assert().Equal(strconv.FormatInt(now, 10), attribute(added[0], types.AttributeKeyStartTime), "event start time")

	stored, err := s.k.GetOffer(s.ctx, offer.ID)
	s.Require().NoError(err, "GetOffer")
	s.Assert().Equal(uint64(1), stored.VectorCounter, "vector counter")
	s.Assert().Equal([]types.Vector{v}, stored.Vectors.Vectors(), "stored vectors")
}

func (s *TestSuite) TestAddVector_FutureIsScheduled() {
	offer := s.requireOffer(0)
	v := s.requireVector(offer.ID, now+day)

	has, err := s.k.ActivationQueue.Has(s.ctx, now+day, offer.ID, v.VectorID)
	s.Require().NoError(err, "ActivationQueue.Has")
	s.Assert().True(has, "future vector is scheduled")
}

func (s *TestSuite) TestAddVector_RetiresUnreachableVectors() {
	offer := s.requireOffer(0)
	first := s.requireVector(offer.ID, now-3*day)
	second := s.requireVector(offer.ID, now-2*day)
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	third, retired, err := s.k.AddVector(s.ctx, offer.ID, testVector(now-day))
	s.Require().NoError(err, "AddVector")
	s.Require().Len(retired, 1, "retired vectors")
	s.Assert().Equal(first.VectorID, retired[0].VectorID, "the oldest vector is retired")

	stored, err := s.k.GetOffer(s.ctx, offer.ID)
	s.Require().NoError(err, "GetOffer")
	s.Assert().ElementsMatch([]types.Vector{second, third}, stored.Vectors.Vectors(), "active vector and its predecessor survive")

	events := findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorRetired)
	s.Require().Len(events, 1, "vector_retired events")
	s.Assert().Equal(strconv.FormatUint(first.VectorID, 10), attribute(events[0], types.AttributeKeyVectorID), "retired id")
	s.Assert().Equal(strconv.FormatUint(third.VectorID, 10), attribute(events[0], types.AttributeKeyActiveVectorID), "active id")
}

func (s *TestSuite) TestAddVector_Failures() {
	offer := s.requireOffer(0)
	s.requireVector(offer.ID, now+day)

	tests := []struct {
		name        string
		offerID     uint64
		vector      types.Vector
		expectedErr error
	}{
		{
			name:        "unknown offer",
			offerID:     99,
			vector:      testVector(now),
			expectedErr: types.ErrOfferNotFound,
		},
		{
			name:        "duplicate start time",
			offerID:     offer.ID,
			vector:      testVector(now + day),
			expectedErr: types.ErrDuplicateStartTime,
		},
		{
			name:        "zero base price",
			offerID:     offer.ID,
			vector:      types.Vector{StartTime: now, BaseTime: now, APR: 1, PriceFixDuration: day},
			expectedErr: types.ErrInvalidVector,
		},
		{
			name:        "base time after start time",
			offerID:     offer.ID,
			vector:      types.Vector{StartTime: now, BaseTime: now + 1, BasePrice: 1, PriceFixDuration: day},
			expectedErr: types.ErrInvalidVector,
		},
		{
			name:    "price overflows at start",
			offerID: offer.ID,
			vector: types.Vector{
				StartTime:        now,
				BaseTime:         1,
				BasePrice:        1_000_000_000,
				APR:              1_000_000,
				PriceFixDuration: 1,
			},
			expectedErr: types.ErrMathOverflow,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, _, err := s.k.AddVector(s.ctx, tc.offerID, tc.vector)
			s.Require().Error(err, "AddVector")
			s.Assert().ErrorIs(err, tc.expectedErr, "AddVector error")
		})
	}

	stored, err := s.k.GetOffer(s.ctx, offer.ID)
	s.Require().NoError(err, "GetOffer")
	s.Assert().Equal(1, stored.Vectors.Len(), "failed inserts leave the store untouched")
	s.Assert().Equal(uint64(1), stored.VectorCounter, "failed inserts do not consume ids")
}

func (s *TestSuite) TestAddVector_FullStore() {
	offer := s.requireOffer(0)
	for i := int64(1); i <= types.MaxVectors; i++ {
		s.requireVector(offer.ID, now+i*day)
	}

	_, _, err := s.k.AddVector(s.ctx, offer.ID, testVector(now+100*day))
	s.Require().ErrorIs(err, types.ErrAccountFull, "eleventh vector")
}

func (s *TestSuite) TestDeleteVector() {
	offer := s.requireOffer(0)
	first := s.requireVector(offer.ID, now-2*day)
	second := s.requireVector(offer.ID, now-day)
	future := s.requireVector(offer.ID, now+day)

	_, err := s.k.DeleteVector(s.ctx, offer.ID, first.VectorID)
	s.Require().ErrorIs(err, types.ErrCannotDeletePreviousVector, "predecessor of the active vector")

	_, err = s.k.DeleteVector(s.ctx, offer.ID, 42)
	s.Require().ErrorIs(err, types.ErrVectorNotFound, "unknown vector")

	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	removed, err := s.k.DeleteVector(s.ctx, offer.ID, future.VectorID)
	s.Require().NoError(err, "DeleteVector(future)")
	s.Assert().Equal(future, removed, "removed vector")

	has, err := s.k.ActivationQueue.Has(s.ctx, future.StartTime, offer.ID, future.VectorID)
	s.Require().NoError(err, "ActivationQueue.Has")
	s.Assert().False(has, "deleted vector is unscheduled")
	s.Assert().Len(findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorDeleted), 1, "vector_deleted events")

	_, err = s.k.DeleteVector(s.ctx, offer.ID, second.VectorID)
	s.Require().NoError(err, "the active vector itself may be deleted")

	stored, err := s.k.GetOffer(s.ctx, offer.ID)
	s.Require().NoError(err, "GetOffer")
	s.Assert().Equal([]types.Vector{first}, stored.Vectors.Vectors(), "remaining vectors")
}

func (s *TestSuite) TestDeleteAllVectors() {
	offer := s.requireOffer(0)
	s.requireVector(offer.ID, now-day)
	s.requireVector(offer.ID, now)
	future := s.requireVector(offer.ID, now+day)
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	removed, err := s.k.DeleteAllVectors(s.ctx, offer.ID)
	s.Require().NoError(err, "DeleteAllVectors")
	s.Assert().Len(removed, 3, "removed vectors")

	stored, err := s.k.GetOffer(s.ctx, offer.ID)
	s.Require().NoError(err, "GetOffer")
	s.Assert().Zero(stored.Vectors.Len(), "store is empty")
	s.Assert().Equal(uint64(3), stored.VectorCounter, "counter is kept")

	has, err := s.k.ActivationQueue.Has(s.ctx, future.StartTime, offer.ID, future.VectorID)
	s.Require().NoError(err, "ActivationQueue.Has")
	s.Assert().False(has, "schedule cleared")

	cleared := findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorsCleared)
	s.Require().Len(cleared, 1, "vectors_cleared events")
	s.Assert().Equal("1,2,3", attribute(cleared[0], types.AttributeKeyVectorIDs), "cleared ids")

	next := s.requireVector(offer.ID, now)
	s.Assert().Equal(uint64(4), next.VectorID, "ids continue after a clear")
}

func (s *TestSuite) TestGetActiveVector() {
	offer := s.requireOffer(0)
	first := s.requireVector(offer.ID, now-day)
	second := s.requireVector(offer.ID, now+day)

	active, prev, err := s.k.GetActiveVector(s.ctx, offer.ID, now)
	s.Require().NoError(err, "GetActiveVector(now)")
	s.Assert().Equal(first, active, "active now")
	s.Assert().Nil(prev, "first vector has no predecessor")

	active, prev, err = s.k.GetActiveVector(s.ctx, offer.ID, now+day)
	s.Require().NoError(err, "GetActiveVector(tomorrow)")
	s.Assert().Equal(second, active, "active tomorrow")
	s.Require().NotNil(prev, "predecessor tomorrow")
	s.Assert().Equal(first, *prev, "predecessor")

	_, _, err = s.k.GetActiveVector(s.ctx, offer.ID, now-2*day)
	s.Require().ErrorIs(err, types.ErrNoActiveVector, "before every vector")
}
