package covary_test

import (
	"fmt"

	"github.com/viant/covary"
	"github.com/viant/covary/conv"
	"github.com/viant/covary/value"
)

func ExampleMap() {
	numbers := covary.Map[string, int]([]string{"123", "456", "789"}, conv.StringToInt{})
	fmt.Println(numbers)

	values := value.MustList(42, "Hello", 3.14, nil)
	fmt.Println(covary.Map[value.Value, string](values, conv.DetailedText{}))
	// Output:
	// [123 456 789]
	// [[int: 42] [string: Hello] [float64: 3.14] NULL]
}
