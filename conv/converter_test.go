package conv

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/covary/value"
)

func TestStringToInt_Convert(t *testing.T) {
	converter := StringToInt{}

	testCases := []struct {
		description string
		input       string
		expected    int
	}{
		{"digits", "123", 123},
		{"letters", "abc", 0},
		{"empty", "", 0},
		{"negative", "-45", -45},
		{"plus sign", "+7", 7},
		{"white space", " 42 ", 42},
		{"control white space", "\t\n\v\f\r42\r\n", 42},
		{"no-break space", "\u00a042", 0},
		{"next line", "42\u0085", 0},
		{"float", "3.14", 0},
		{"hex", "0x10", 0},
		{"underscore", "1_000", 0},
		{"max int32", "2147483647", math.MaxInt32},
		{"min int32", "-2147483648", math.MinInt32},
		{"above int32", "2147483648", 0},
		{"above int64", "99999999999999999999", 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, converter.Convert(tc.input), tc.description)
	}
}

func TestText_Convert(t *testing.T) {
	converter := Text{}

	testCases := []struct {
		description string
		input       value.Value
		expected    string
	}{
		{"absent", value.Null(), "null"},
		{"int", value.Int(42), "42"},
		{"string", value.String("Hello"), "Hello"},
		{"float", value.Float(3.14), "3.14"},
		{"float32", value.MustOf(float32(3.14)), "3.14"},
		{"bool", value.Bool(true), "true"},
		{"empty string", value.String(""), ""},
		{"duration", value.Duration(2 * time.Second), "2s"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, converter.Convert(tc.input), tc.description)
	}
}

func TestDetailedText_Convert(t *testing.T) {
	converter := DetailedText{}

	testCases := []struct {
		description string
		input       value.Value
		expected    string
	}{
		{"absent", value.Null(), "NULL"},
		{"int", value.Int(42), "[int: 42]"},
		{"string", value.String("Test"), "[string: Test]"},
		{"float", value.Float(2.71), "[float64: 2.71]"},
		{"float32", value.MustOf(float32(3.14)), "[float32: 3.14]"},
		{"time", value.Time(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), "[time.Time: 2024-01-02T03:04:05Z]"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, converter.Convert(tc.input), tc.description)
	}

	actual := converter.Convert(value.Int(42))
	assert.Contains(t, actual, value.KindInt.Name())
	assert.Contains(t, actual, "42")
}

func TestValueToInt_Convert(t *testing.T) {
	converter := ValueToInt{}

	testCases := []struct {
		description string
		input       value.Value
		expected    int
	}{
		{"numeric text", value.String("300"), 300},
		{"int", value.Int(200), 200},
		{"absent", value.Null(), 0},
		{"not a number", value.String("not-a-number"), 0},
		{"float", value.Float(3.14), 0},
		{"whole float", value.Float(5), 5},
		{"bool", value.Bool(true), 0},
		{"int above int32", value.Int(math.MaxInt32 + 1), 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, converter.Convert(tc.input), tc.description)
	}
}

func TestContramap(t *testing.T) {
	fromText := FromString[int](ValueToInt{})
	narrow := StringToInt{}
	for _, input := range []string{"123", "", "abc", " -9 ", "2147483648", "+0"} {
		assert.Equal(t, narrow.Convert(input), fromText.Convert(input), input)
	}

	length := Contramap[[]byte, string, int](Func[string, int](func(s string) int { return len(s) }), func(b []byte) string { return string(b) })
	assert.Equal(t, 3, length.Convert([]byte("abc")))
}

func TestCovary(t *testing.T) {
	widened := Widen[value.Value, string](Text{})
	assert.Equal(t, any("null"), widened.Convert(value.Null()))
	assert.Equal(t, any("42"), widened.Convert(value.Int(42)))

	quoted := Covary[string, int, string](StringToInt{}, strconv.Itoa)
	assert.Equal(t, "0", quoted.Convert("abc"))
	assert.Equal(t, "12", quoted.Convert("12"))
}

func TestFunc_Convert(t *testing.T) {
	var converter Converter[int, string] = Func[int, string](strconv.Itoa)
	assert.Equal(t, "7", converter.Convert(7))
}
