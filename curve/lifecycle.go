package curve

import (
	"math"

	"github.com/provlabs/offers/types"
)

// InsertVector validates v, assigns it the next vector id of the offer and
// writes it into the first free slot. Chronological order relative to the
// existing vectors is not enforced. Nothing is written unless every check,
// including the price arithmetic at the vector's start, succeeds.
func InsertVector(offer *types.Offer, v types.Vector) (types.Vector, error) {
	if err := v.ValidateParams(); err != nil {
		return types.Vector{}, err
	}
	if offer.Vectors.IsFull() {
		return types.Vector{}, types.ErrAccountFull.Wrapf("offer %d has %d vectors", offer.ID, types.MaxVectors)
	}
	for _, existing := range offer.Vectors.Vectors() {
		if existing.StartTime == v.StartTime {
			return types.Vector{}, types.ErrDuplicateStartTime.Wrapf("vector %d starts at %d", existing.VectorID, v.StartTime)
		}
	}
	if _, err := StepGrowth(v); err != nil {
		return types.Vector{}, err
	}
	if _, err := CalculateStepPriceAt(v, v.StartTime); err != nil {
		return types.Vector{}, err
	}
	if offer.VectorCounter == math.MaxUint64 {
		return types.Vector{}, types.ErrMathOverflow.Wrap("vector counter exhausted")
	}

	v.VectorID = offer.VectorCounter + 1
	if _, err := offer.Vectors.Insert(v); err != nil {
		return types.Vector{}, err
	}
	offer.VectorCounter = v.VectorID
	return v, nil
}

// DeleteVector clears the vector with the given id. The vector preceding the
// vector active at now cannot be deleted.
func DeleteVector(offer *types.Offer, vectorID uint64, now int64) (types.Vector, error) {
	if vectorID == 0 {
		return types.Vector{}, types.ErrInvalidVectorID.Wrap("vector id cannot be zero")
	}
	slot, target, found := offer.Vectors.Find(vectorID)
	if !found {
		return types.Vector{}, types.ErrVectorNotFound.Wrapf("vector %d in offer %d", vectorID, offer.ID)
	}

	vectors := offer.Vectors.Vectors()
	if active, ok := FindActiveVectorAt(vectors, now); ok {
		if prev, ok := FindPrecedingVector(vectors, active); ok && prev.VectorID == target.VectorID {
			return types.Vector{}, types.ErrCannotDeletePreviousVector.Wrapf("vector %d precedes active vector %d", target.VectorID, active.VectorID)
		}
	}

	offer.Vectors.Clear(slot)
	return target, nil
}

// DeleteAllVectors clears every vector of the offer and returns them in slot order.
func DeleteAllVectors(offer *types.Offer) []types.Vector {
	return offer.Vectors.ClearAll()
}

// CleanOldVectors retires past vectors after inserted was added at now. The
// active vector is inserted itself when it starts at now, otherwise the vector
// selected at now. The active vector, its preceding vector and every vector
// starting at or after the active one are kept; all others are cleared and
// returned along with the active vector.
func CleanOldVectors(offer *types.Offer, inserted types.Vector, now int64) ([]types.Vector, types.Vector) {
	vectors := offer.Vectors.Vectors()

	active := inserted
	if inserted.StartTime != now {
		var ok bool
		if active, ok = FindActiveVectorAt(vectors, now); !ok {
			return nil, types.Vector{}
		}
	}
	prev, hasPrev := FindPrecedingVector(vectors, active)

	var retired []types.Vector
	for i := 0; i < offer.Vectors.Cap(); i++ {
		v, ok := offer.Vectors.Slot(i)
		if !ok || v.VectorID == active.VectorID || v.StartTime >= active.StartTime {
			continue
		}
		if hasPrev && v.VectorID == prev.VectorID {
			continue
		}
		offer.Vectors.Clear(i)
		retired = append(retired, v)
	}
	return retired, active
}
