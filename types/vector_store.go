package types

import (
	"encoding/json"
	fmt "fmt"

	"cosmossdk.io/errors"
)

// MaxVectors is the number of vector slots owned by a single offer.
const MaxVectors = 10

type vectorSlot struct {
	vector   Vector
	occupied bool
}

// VectorStore is the fixed-capacity slot array of an offer's vectors.
//
// Slots are never compacted: an insert lands in the first free slot and a
// delete frees exactly one slot. Enumeration follows slot order, which is not
// chronological, so callers must scan the full set.
type VectorStore struct {
	slots [MaxVectors]vectorSlot
}

// NewVectorStore builds a store from its wire layout, treating empty vectors as free slots.
func NewVectorStore(raw [MaxVectors]Vector) VectorStore {
	var s VectorStore
	for i, v := range raw {
		if !v.IsEmpty() {
			s.slots[i] = vectorSlot{vector: v, occupied: true}
		}
	}
	return s
}

// Cap returns the slot capacity.
func (s *VectorStore) Cap() int { return MaxVectors }

// Len returns the number of occupied slots.
func (s *VectorStore) Len() int {
	n := 0
	for _, slot := range s.slots {
		if slot.occupied {
			n++
		}
	}
	return n
}

// IsFull returns true when no free slot remains.
func (s *VectorStore) IsFull() bool {
	return s.Len() == MaxVectors
}

// Insert writes the vector into the first free slot and returns the slot index.
func (s *VectorStore) Insert(v Vector) (int, error) {
	if v.IsEmpty() {
		return -1, errors.Wrap(ErrInvalidVector, "cannot insert an empty vector")
	}
	for i := range s.slots {
		if !s.slots[i].occupied {
			s.slots[i] = vectorSlot{vector: v, occupied: true}
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrAccountFull, "all %d slots are in use", MaxVectors)
}

// Slot returns the vector held in slot i.
func (s *VectorStore) Slot(i int) (Vector, bool) {
	if i < 0 || i >= MaxVectors || !s.slots[i].occupied {
		return Vector{}, false
	}
	return s.slots[i].vector, true
}

// Find returns the slot index and vector with the given id.
func (s *VectorStore) Find(vectorID uint64) (int, Vector, bool) {
	if vectorID == 0 {
		return -1, Vector{}, false
	}
	for i, slot := range s.slots {
		if slot.occupied && slot.vector.VectorID == vectorID {
			return i, slot.vector, true
		}
	}
	return -1, Vector{}, false
}

// Clear frees slot i and returns the vector it held.
func (s *VectorStore) Clear(i int) (Vector, bool) {
	v, ok := s.Slot(i)
	if !ok {
		return Vector{}, false
	}
	s.slots[i] = vectorSlot{}
	return v, true
}

// ClearAll frees every occupied slot and returns the removed vectors in slot order.
func (s *VectorStore) ClearAll() []Vector {
	removed := s.Vectors()
	s.slots = [MaxVectors]vectorSlot{}
	return removed
}

// Vectors returns the occupied vectors in slot order.
func (s *VectorStore) Vectors() []Vector {
	out := make([]Vector, 0, MaxVectors)
	for _, slot := range s.slots {
		if slot.occupied {
			out = append(out, slot.vector)
		}
	}
	return out
}

// Raw returns the wire layout: one entry per slot, the zero vector for free slots.
func (s *VectorStore) Raw() [MaxVectors]Vector {
	var raw [MaxVectors]Vector
	for i, slot := range s.slots {
		if slot.occupied {
			raw[i] = slot.vector
		}
	}
	return raw
}

// Validate checks every occupied slot and that vector ids are unique.
func (s *VectorStore) Validate() error {
	seen := make(map[uint64]int, MaxVectors)
	for i, slot := range s.slots {
		if !slot.occupied {
			continue
		}
		if err := slot.vector.Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		if prev, ok := seen[slot.vector.VectorID]; ok {
			return errors.Wrapf(ErrInvalidVectorID, "vector id %d used by slots %d and %d", slot.vector.VectorID, prev, i)
		}
		seen[slot.vector.VectorID] = i
	}
	return nil
}

// MarshalJSON encodes the store as its fixed slot layout.
func (s VectorStore) MarshalJSON() ([]byte, error) {
	raw := s.Raw()
	return json.Marshal(raw[:])
}

// UnmarshalJSON decodes a slot layout of at most MaxVectors entries.
func (s *VectorStore) UnmarshalJSON(bz []byte) error {
	var vectors []Vector
	if err := json.Unmarshal(bz, &vectors); err != nil {
		return err
	}
	if len(vectors) > MaxVectors {
		return fmt.Errorf("too many vector slots: %d > %d", len(vectors), MaxVectors)
	}
	var raw [MaxVectors]Vector
	copy(raw[:], vectors)
	*s = NewVectorStore(raw)
	return nil
}
