package keeper_test

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/offers/types"
)

func (s *TestSuite) TestBeginBlocker_ActivatesDueVectors() {
	offer := s.requireOffer(0)
	s.requireVector(offer.ID, now-day)
	tomorrow := s.requireVector(offer.ID, now+day)
	later := s.requireVector(offer.ID, now+3*day)

	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	s.Require().NoError(s.k.BeginBlocker(s.ctx), "BeginBlocker before any start")
	s.Assert().Empty(findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorActivated), "nothing is due yet")

	s.setBlockTime(now + day + 5)
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	s.Require().NoError(s.k.TestAccessor_processActivations(s.T(), s.ctx), "processActivations")

	activated := findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorActivated)
	s.Require().Len(activated, 1, "vector_activated events")
	s.Assert().Equal(strconv.FormatUint(tomorrow.VectorID, 10), attribute(activated[0], types.AttributeKeyVectorID), "activated vector")
	s.Assert().Equal("1000000000", attribute(activated[0], types.AttributeKeyPrice), "opening price")

	has, err := s.k.ActivationQueue.Has(s.ctx, tomorrow.StartTime, offer.ID, tomorrow.VectorID)
	s.Require().NoError(err, "ActivationQueue.Has")
	s.Assert().False(has, "activated vector is dequeued")

	has, err = s.k.ActivationQueue.Has(s.ctx, later.StartTime, offer.ID, later.VectorID)
	s.Require().NoError(err, "ActivationQueue.Has")
	s.Assert().True(has, "later vector stays scheduled")

	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	s.Require().NoError(s.k.BeginBlocker(s.ctx), "second BeginBlocker in the same window")
	s.Assert().Empty(findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorActivated), "activations are announced once")
}

func (s *TestSuite) TestBeginBlocker_DropsStaleEntries() {
	offer := s.requireOffer(0)
	v := s.requireVector(offer.ID, now+day)

	// an entry whose vector is gone
	s.Require().NoError(s.k.ActivationQueue.Enqueue(s.ctx, now+day, offer.ID, 77), "Enqueue stale vector")
	// an entry whose offer is gone
	s.Require().NoError(s.k.ActivationQueue.Enqueue(s.ctx, now+day, 99, 1), "Enqueue stale offer")

	s.setBlockTime(now + day)
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	s.Require().NoError(s.k.BeginBlocker(s.ctx), "BeginBlocker")

	activated := findEvents(s.ctx.EventManager().Events(), types.EventTypeVectorActivated)
	s.Require().Len(activated, 1, "only the live vector is announced")
	s.Assert().Equal(strconv.FormatUint(v.VectorID, 10), attribute(activated[0], types.AttributeKeyVectorID), "activated vector")

	count := 0
	s.Require().NoError(s.k.ActivationQueue.Walk(s.ctx, func(int64, uint64, uint64) (bool, error) {
		count++
		return false, nil
	}), "ActivationQueue.Walk")
	s.Assert().Zero(count, "queue is drained")
}
