package types

import (
	"strconv"
	"strings"

	"cosmossdk.io/core/event"
)

const (
	EventTypeOfferCreated    = "offer_created"
	EventTypeOfferClosed     = "offer_closed"
	EventTypeOfferFeeUpdated = "offer_fee_updated"
	EventTypeVectorAdded     = "vector_added"
	EventTypeVectorDeleted   = "vector_deleted"
	EventTypeVectorsCleared  = "vectors_cleared"
	EventTypeVectorRetired   = "vector_retired"
	EventTypeVectorActivated = "vector_activated"
	EventTypeParamsUpdated   = "params_updated"

	AttributeKeyOfferID          = "offer_id"
	AttributeKeyTokenIn          = "token_in_denom"
	AttributeKeyTokenOut         = "token_out_denom"
	AttributeKeyOperator         = "operator"
	AttributeKeyAuthority        = "authority"
	AttributeKeyFeeBefore        = "fee_basis_points_before"
	AttributeKeyFeeAfter         = "fee_basis_points_after"
	AttributeKeyVectorID         = "vector_id"
	AttributeKeyVectorIDs        = "vector_ids"
	AttributeKeyActiveVectorID   = "active_vector_id"
	AttributeKeyStartTime        = "start_time"
	AttributeKeyBaseTime         = "base_time"
	AttributeKeyBasePrice        = "base_price"
	AttributeKeyAPR              = "apr"
	AttributeKeyPriceFixDuration = "price_fix_duration"
	AttributeKeyPrice            = "price"
	AttributeKeyOperatorBefore   = "operator_before"
	AttributeKeyOperatorAfter    = "operator_after"
)

// Event is a typed key/value event emitted through the event service.
type Event struct {
	Type       string
	Attributes []event.Attribute
}

func attr(key, value string) event.Attribute {
	return event.Attribute{Key: key, Value: value}
}

func u64(v uint64) string { return strconv.FormatUint(v, 10) }

func i64(v int64) string { return strconv.FormatInt(v, 10) }

func vectorAttributes(offerID uint64, v Vector) []event.Attribute {
	return []event.Attribute{
		attr(AttributeKeyOfferID, u64(offerID)),
		attr(AttributeKeyVectorID, u64(v.VectorID)),
		attr(AttributeKeyStartTime, i64(v.StartTime)),
		attr(AttributeKeyBaseTime, i64(v.BaseTime)),
		attr(AttributeKeyBasePrice, u64(v.BasePrice)),
		attr(AttributeKeyAPR, u64(v.APR)),
		attr(AttributeKeyPriceFixDuration, i64(v.PriceFixDuration)),
	}
}

// NewEventOfferCreated creates a new offer_created event.
func NewEventOfferCreated(offer Offer, operator string) Event {
	return Event{
		Type: EventTypeOfferCreated,
		Attributes: []event.Attribute{
			attr(AttributeKeyOfferID, u64(offer.ID)),
			attr(AttributeKeyTokenIn, offer.TokenInDenom),
			attr(AttributeKeyTokenOut, offer.TokenOutDenom),
			attr(AttributeKeyFeeAfter, u64(offer.FeeBasisPoints)),
			attr(AttributeKeyOperator, operator),
		},
	}
}

// NewEventOfferClosed creates a new offer_closed event.
func NewEventOfferClosed(offer Offer, operator string) Event {
	return Event{
		Type: EventTypeOfferClosed,
		Attributes: []event.Attribute{
			attr(AttributeKeyOfferID, u64(offer.ID)),
			attr(AttributeKeyTokenIn, offer.TokenInDenom),
			attr(AttributeKeyTokenOut, offer.TokenOutDenom),
			attr(AttributeKeyOperator, operator),
		},
	}
}

// NewEventOfferFeeUpdated creates a new offer_fee_updated event.
func NewEventOfferFeeUpdated(offerID, before, after uint64, operator string) Event {
	return Event{
		Type: EventTypeOfferFeeUpdated,
		Attributes: []event.Attribute{
			attr(AttributeKeyOfferID, u64(offerID)),
			attr(AttributeKeyFeeBefore, u64(before)),
			attr(AttributeKeyFeeAfter, u64(after)),
			attr(AttributeKeyOperator, operator),
		},
	}
}

// NewEventVectorAdded creates a new vector_added event.
func NewEventVectorAdded(offerID uint64, v Vector) Event {
	return Event{Type: EventTypeVectorAdded, Attributes: vectorAttributes(offerID, v)}
}

// NewEventVectorDeleted creates a new vector_deleted event.
func NewEventVectorDeleted(offerID uint64, v Vector) Event {
	return Event{Type: EventTypeVectorDeleted, Attributes: vectorAttributes(offerID, v)}
}

// NewEventVectorsCleared creates a new vectors_cleared event listing every removed vector id.
func NewEventVectorsCleared(offerID uint64, removed []Vector) Event {
	ids := make([]string, len(removed))
	for i, v := range removed {
		ids[i] = u64(v.VectorID)
	}
	return Event{
		Type: EventTypeVectorsCleared,
		Attributes: []event.Attribute{
			attr(AttributeKeyOfferID, u64(offerID)),
			attr(AttributeKeyVectorIDs, strings.Join(ids, ",")),
		},
	}
}

// NewEventVectorRetired creates a new vector_retired event.
func NewEventVectorRetired(offerID uint64, retired Vector, activeID uint64) Event {
	return Event{
		Type: EventTypeVectorRetired,
		Attributes: []event.Attribute{
			attr(AttributeKeyOfferID, u64(offerID)),
			attr(AttributeKeyVectorID, u64(retired.VectorID)),
			attr(AttributeKeyStartTime, i64(retired.StartTime)),
			attr(AttributeKeyActiveVectorID, u64(activeID)),
		},
	}
}

// NewEventVectorActivated creates a new vector_activated event carrying the opening price.
func NewEventVectorActivated(offerID uint64, v Vector, price uint64) Event {
	return Event{
		Type:       EventTypeVectorActivated,
		Attributes: append(vectorAttributes(offerID, v), attr(AttributeKeyPrice, u64(price))),
	}
}

// NewEventParamsUpdated creates a new params_updated event.
func NewEventParamsUpdated(authority string, before, after Params) Event {
	return Event{
		Type: EventTypeParamsUpdated,
		Attributes: []event.Attribute{
			attr(AttributeKeyAuthority, authority),
			attr(AttributeKeyOperatorBefore, before.Operator),
			attr(AttributeKeyOperatorAfter, after.Operator),
		},
	}
}

// GetAttribute returns the value of the first attribute with the given key.
func (e Event) GetAttribute(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
