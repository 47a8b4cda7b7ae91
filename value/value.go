package value

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Value represents a single convertible value or the absent value.
// The zero Value is absent.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	t    time.Time
}

// Null returns the absent value
func Null() Value {
	return Value{}
}

// Int returns an integer value
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating point value
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Float32 returns a single precision floating point value
func Float32(v float32) Value {
	return Value{kind: KindFloat32, f: float64(v)}
}

// String returns a text value
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// Bool returns a boolean value
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Time returns a time value
func Time(v time.Time) Value {
	return Value{kind: KindTime, t: v}
}

// Duration returns a duration value
func Duration(v time.Duration) Value {
	return Value{kind: KindDuration, i: int64(v)}
}

// Of returns a Value for a native Go value. Integers of any width are widened
// to int64, named scalar types resolve to their underlying kind, pointers are
// dereferenced and nil is absent.
func Of(v any) (Value, error) {
	switch actual := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return actual, nil
	case string:
		return String(actual), nil
	case bool:
		return Bool(actual), nil
	case time.Time:
		return Time(actual), nil
	case time.Duration:
		return Duration(actual), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		i, err := safemath.ConvertAny[int64](actual)
		if err != nil {
			return Null(), fmt.Errorf("failed to convert %T %v to int: %w", actual, actual, err)
		}
		return Int(i), nil
	case float64:
		return Float(actual), nil
	case float32:
		return Float32(actual), nil
	}
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() {
			return Null(), nil
		}
		return Of(rValue.Elem().Interface())
	case reflect.String:
		return String(rValue.String()), nil
	case reflect.Bool:
		return Bool(rValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := safemath.ConvertAny[int64](rValue.Uint())
		if err != nil {
			return Null(), fmt.Errorf("failed to convert %T %v to int: %w", v, v, err)
		}
		return Int(i), nil
	case reflect.Float64:
		return Float(rValue.Float()), nil
	case reflect.Float32:
		return Float32(float32(rValue.Float())), nil
	}
	return Null(), fmt.Errorf("unsupported value type: %T", v)
}

// MustOf returns a Value for v or panics
func MustOf(v any) Value {
	ret, err := Of(v)
	if err != nil {
		panic(err)
	}
	return ret
}

// List returns Values for each of vs
func List(vs ...any) ([]Value, error) {
	result := make([]Value, len(vs))
	for i, v := range vs {
		item, err := Of(v)
		if err != nil {
			return nil, fmt.Errorf("invalid item at %d: %w", i, err)
		}
		result[i] = item
	}
	return result, nil
}

// MustList returns Values for each of vs or panics
func MustList(vs ...any) []Value {
	ret, err := List(vs...)
	if err != nil {
		panic(err)
	}
	return ret
}

// Kind returns value kind
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent returns true if value holds nothing
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// TypeName returns the name of the held type
func (v Value) TypeName() string {
	return v.kind.Name()
}

// String returns the text representation, empty for the absent value
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindFloat32:
		return cast.ToString(float32(v.f))
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindDuration:
		return time.Duration(v.i).String()
	}
	return ""
}
