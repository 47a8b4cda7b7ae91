package render

import (
	"fmt"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/samber/lo"
	"github.com/viant/covary/value"
)

// Text renders items as "[a, b, c]"
func Text[T any](items []T) string {
	texts := lo.Map(items, func(item T, _ int) string {
		return fmt.Sprint(item)
	})
	return "[" + strings.Join(texts, ", ") + "]"
}

// JSON renders items as a JSON array
func JSON[T any](items []T) ([]byte, error) {
	if values, ok := any(items).([]value.Value); ok {
		return value.Values(values).MarshalJSON()
	}
	elements := make(array, len(items))
	for i, item := range items {
		if !isSupported(item) {
			return nil, fmt.Errorf("unsupported JSON element at %d: %T", i, item)
		}
		elements[i] = item
	}
	return gojay.MarshalJSONArray(elements)
}

type array []interface{}

func (a array) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		switch actual := item.(type) {
		case int:
			enc.AddInt(actual)
		case int64:
			enc.AddInt64(actual)
		case float64:
			enc.AddFloat64(actual)
		case string:
			enc.AddString(actual)
		case bool:
			enc.AddBool(actual)
		case value.Value:
			actual.AddTo(enc)
		default:
			enc.AddNull()
		}
	}
}

func (a array) IsNil() bool {
	return a == nil
}

func isSupported(item interface{}) bool {
	switch item.(type) {
	case nil, int, int64, float64, string, bool, value.Value:
		return true
	}
	return false
}
