package curve

import (
	"github.com/provlabs/offers/types"
	"github.com/provlabs/offers/utils"
)

// FindActiveVectorAt returns the vector in force at time t: the non-empty vector
// with the greatest StartTime not after t. Vectors sharing that StartTime resolve
// to the highest VectorID. The input is scanned in full and never modified.
func FindActiveVectorAt(vectors []types.Vector, t int64) (types.Vector, bool) {
	var (
		active types.Vector
		found  bool
	)
	eligible := utils.Filter(vectors, func(v types.Vector) bool {
		return !v.IsEmpty() && v.StartTime <= t
	})
	for v := range eligible {
		if !found || v.StartTime > active.StartTime ||
			(v.StartTime == active.StartTime && v.VectorID > active.VectorID) {
			active = v
			found = true
		}
	}
	return active, found
}

// FindPrecedingVector returns the vector that was in force just before active took over.
func FindPrecedingVector(vectors []types.Vector, active types.Vector) (types.Vector, bool) {
	if active.IsEmpty() {
		return types.Vector{}, false
	}
	return FindActiveVectorAt(vectors, active.StartTime-1)
}
