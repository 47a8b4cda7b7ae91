package covary

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/viant/covary/conv"
	"github.com/viant/covary/value"
	"github.com/viant/covary/visitor"
)

// Map returns a new slice with converter applied to each element of input
func Map[In, Out any](input []In, converter conv.Converter[In, Out]) []Out {
	return lo.Map(input, func(item In, _ int) Out {
		return converter.Convert(item)
	})
}

// MapFunc returns a new slice with fn applied to each element of input
func MapFunc[In, Out any](input []In, fn func(In) Out) []Out {
	return Map[In, Out](input, conv.Func[In, Out](fn))
}

// MapAny maps any native Go slice through a value converter.
// It fails only when slice is not a slice or holds an unsupported element.
func MapAny[Out any](slice interface{}, converter conv.Converter[value.Value, Out]) ([]Out, error) {
	visit, err := visitor.ValuesOf(slice)
	if err != nil {
		return nil, err
	}
	result := make([]Out, visitor.Len(slice))
	err = visit(func(index int, element value.Value) (bool, error) {
		result[index] = converter.Convert(element)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to map %T: %w", slice, err)
	}
	return result, nil
}
