package value

import (
	"time"

	"github.com/francoispqt/gojay"
)

// Values represents a JSON encodable sequence of values
type Values []Value

// MarshalJSONArray encodes each value as an array element
func (v Values) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range v {
		item.AddTo(enc)
	}
}

// IsNil returns true for a nil sequence
func (v Values) IsNil() bool {
	return v == nil
}

// MarshalJSON returns JSON array representation
func (v Values) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(v)
}

// AddTo appends the value to the array being encoded, absent as null
func (v Value) AddTo(enc *gojay.Encoder) {
	switch v.kind {
	case KindInt:
		enc.AddInt64(v.i)
	case KindFloat:
		enc.AddFloat64(v.f)
	case KindFloat32:
		enc.AddFloat32(float32(v.f))
	case KindString:
		enc.AddString(v.s)
	case KindBool:
		enc.AddBool(v.b)
	case KindTime:
		enc.AddString(v.t.Format(time.RFC3339Nano))
	case KindDuration:
		enc.AddString(time.Duration(v.i).String())
	default:
		enc.AddNull()
	}
}

