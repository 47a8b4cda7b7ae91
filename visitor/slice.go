package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/covary/value"
)

// ValuesOf creates a Visitor for any native Go slice, visiting each element as
// a value.Value. Elements outside the supported kinds stop the visit with an error.
func ValuesOf(slice interface{}) (Visitor[int, value.Value], error) {
	switch actual := slice.(type) {
	case []value.Value:
		return TypedSliceVisitorOf(actual, func(v value.Value) value.Value { return v }), nil
	case value.Values:
		return TypedSliceVisitorOf([]value.Value(actual), func(v value.Value) value.Value { return v }), nil
	case []string:
		return TypedSliceVisitorOf(actual, value.String), nil
	case []bool:
		return TypedSliceVisitorOf(actual, value.Bool), nil
	case []int:
		return TypedSliceVisitorOf(actual, func(v int) value.Value { return value.Int(int64(v)) }), nil
	case []int64:
		return TypedSliceVisitorOf(actual, value.Int), nil
	case []float64:
		return TypedSliceVisitorOf(actual, value.Float), nil
	case []interface{}:
		return AnySliceVisitorOf(actual), nil
	}
	val := reflect.ValueOf(slice)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", slice)
	}
	visitor := &reflectSliceVisitor{data: val}
	return visitor.Visit, nil
}

// TypedSliceVisitorOf returns a visitor for slice, converting each element with fn
func TypedSliceVisitorOf[E any](slice []E, fn func(E) value.Value) Visitor[int, value.Value] {
	return func(f func(key int, element value.Value) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, fn(e))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnySliceVisitorOf returns a visitor for a slice of arbitrary elements
func AnySliceVisitorOf(slice []interface{}) Visitor[int, value.Value] {
	return func(f func(key int, element value.Value) (bool, error)) error {
		for i, e := range slice {
			item, err := value.Of(e)
			if err != nil {
				return fmt.Errorf("invalid element at %d: %w", i, err)
			}
			continueVisit, err := f(i, item)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

type reflectSliceVisitor struct {
	data reflect.Value
}

// Visit iterates over any slice type via reflection.
func (v *reflectSliceVisitor) Visit(f func(key int, element value.Value) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		item, err := value.Of(v.data.Index(i).Interface())
		if err != nil {
			return fmt.Errorf("invalid element at %d: %w", i, err)
		}
		continueVisit, err := f(i, item)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// Len returns the number of elements of a slice or array, or -1
func Len(slice interface{}) int {
	switch actual := slice.(type) {
	case []interface{}:
		return len(actual)
	case []string:
		return len(actual)
	}
	val := reflect.ValueOf(slice)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return -1
	}
	return val.Len()
}
