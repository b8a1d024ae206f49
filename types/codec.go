package types

import (
	"encoding/binary"
	"encoding/json"
	fmt "fmt"

	collcodec "cosmossdk.io/collections/codec"
)

const (
	offerVersion     byte = 1
	vectorWireSize        = 6 * 8
	offerHeaderSize       = 1 + 3*8
	maxDenomWireSize      = 128
)

var (
	_ collcodec.ValueCodec[Offer]  = OfferValueCodec{}
	_ collcodec.ValueCodec[Params] = JSONValueCodec[Params]{}
)

// OfferValueCodec stores an offer in a compact binary layout. The vector store
// is always written as MaxVectors fixed-size records so that free slots keep
// their position across encode and decode.
type OfferValueCodec struct{}

// Encode implements collcodec.ValueCodec.
func (OfferValueCodec) Encode(o Offer) ([]byte, error) {
	if len(o.TokenInDenom) > maxDenomWireSize || len(o.TokenOutDenom) > maxDenomWireSize {
		return nil, fmt.Errorf("denom exceeds %d bytes", maxDenomWireSize)
	}

	size := offerHeaderSize + 2 + len(o.TokenInDenom) + 2 + len(o.TokenOutDenom) + MaxVectors*vectorWireSize
	bz := make([]byte, 0, size)
	bz = append(bz, offerVersion)
	bz = binary.BigEndian.AppendUint64(bz, o.ID)
	bz = binary.BigEndian.AppendUint64(bz, o.VectorCounter)
	bz = binary.BigEndian.AppendUint64(bz, o.FeeBasisPoints)
	bz = appendString(bz, o.TokenInDenom)
	bz = appendString(bz, o.TokenOutDenom)

	for _, v := range o.Vectors.Raw() {
		bz = binary.BigEndian.AppendUint64(bz, v.VectorID)
		bz = binary.BigEndian.AppendUint64(bz, uint64(v.StartTime))
		bz = binary.BigEndian.AppendUint64(bz, uint64(v.BaseTime))
		bz = binary.BigEndian.AppendUint64(bz, v.BasePrice)
		bz = binary.BigEndian.AppendUint64(bz, v.APR)
		bz = binary.BigEndian.AppendUint64(bz, uint64(v.PriceFixDuration))
	}
	return bz, nil
}

// Decode implements collcodec.ValueCodec.
func (OfferValueCodec) Decode(bz []byte) (Offer, error) {
	var o Offer
	if len(bz) < offerHeaderSize {
		return o, fmt.Errorf("offer too short: %d bytes", len(bz))
	}
	if bz[0] != offerVersion {
		return o, fmt.Errorf("unknown offer encoding version %d", bz[0])
	}
	o.ID = binary.BigEndian.Uint64(bz[1:9])
	o.VectorCounter = binary.BigEndian.Uint64(bz[9:17])
	o.FeeBasisPoints = binary.BigEndian.Uint64(bz[17:25])
	rest := bz[offerHeaderSize:]

	var err error
	if o.TokenInDenom, rest, err = readString(rest); err != nil {
		return o, fmt.Errorf("token in denom: %w", err)
	}
	if o.TokenOutDenom, rest, err = readString(rest); err != nil {
		return o, fmt.Errorf("token out denom: %w", err)
	}
	if len(rest) != MaxVectors*vectorWireSize {
		return o, fmt.Errorf("expected %d vector bytes, got %d", MaxVectors*vectorWireSize, len(rest))
	}

	var raw [MaxVectors]Vector
	for i := range raw {
		rec := rest[i*vectorWireSize : (i+1)*vectorWireSize]
		raw[i] = Vector{
			VectorID:         binary.BigEndian.Uint64(rec[0:8]),
			StartTime:        int64(binary.BigEndian.Uint64(rec[8:16])),
			BaseTime:         int64(binary.BigEndian.Uint64(rec[16:24])),
			BasePrice:        binary.BigEndian.Uint64(rec[24:32]),
			APR:              binary.BigEndian.Uint64(rec[32:40]),
			PriceFixDuration: int64(binary.BigEndian.Uint64(rec[40:48])),
		}
	}
	o.Vectors = NewVectorStore(raw)
	return o, nil
}

// EncodeJSON implements collcodec.ValueCodec.
func (OfferValueCodec) EncodeJSON(o Offer) ([]byte, error) {
	return json.Marshal(o)
}

// DecodeJSON implements collcodec.ValueCodec.
func (OfferValueCodec) DecodeJSON(bz []byte) (Offer, error) {
	var o Offer
	err := json.Unmarshal(bz, &o)
	return o, err
}

// Stringify implements collcodec.ValueCodec.
func (OfferValueCodec) Stringify(o Offer) string {
	return fmt.Sprintf("offer{id=%d pair=%s fee=%d vectors=%d counter=%d}",
		o.ID, o.Pair(), o.FeeBasisPoints, o.Vectors.Len(), o.VectorCounter)
}

// ValueType implements collcodec.ValueCodec.
func (OfferValueCodec) ValueType() string {
	return "offers.Offer"
}

func appendString(bz []byte, s string) []byte {
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(s)))
	return append(bz, s...)
}

func readString(bz []byte) (string, []byte, error) {
	if len(bz) < 2 {
		return "", nil, fmt.Errorf("missing length prefix")
	}
	n := int(binary.BigEndian.Uint16(bz[:2]))
	if n > maxDenomWireSize || len(bz) < 2+n {
		return "", nil, fmt.Errorf("invalid length %d", n)
	}
	return string(bz[2 : 2+n]), bz[2+n:], nil
}

// JSONValueCodec is a collections value codec for plain JSON tagged structs.
type JSONValueCodec[T any] struct{}

// Encode implements collcodec.ValueCodec.
func (JSONValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

// Decode implements collcodec.ValueCodec.
func (JSONValueCodec[T]) Decode(bz []byte) (T, error) {
	var value T
	err := json.Unmarshal(bz, &value)
	return value, err
}

// EncodeJSON implements collcodec.ValueCodec.
func (c JSONValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

// DecodeJSON implements collcodec.ValueCodec.
func (c JSONValueCodec[T]) DecodeJSON(bz []byte) (T, error) {
	return c.Decode(bz)
}

// Stringify implements collcodec.ValueCodec.
func (JSONValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

// ValueType implements collcodec.ValueCodec.
func (JSONValueCodec[T]) ValueType() string {
	var value T
	return fmt.Sprintf("json:%T", value)
}
