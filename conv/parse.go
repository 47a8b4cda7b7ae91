package conv

import (
	"strconv"
	"strings"

	"go.dw1.io/safemath"
)

const asciiSpace = " \t\n\v\f\r"

// parseInt parses a base-10 integer within the 32-bit signed range, allowing
// surrounding ASCII white space and a leading sign; any other input yields 0.
func parseInt(text string) int {
	text = strings.Trim(text, asciiSpace)
	if text == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	narrowed, err := safemath.ConvertAny[int32](parsed)
	if err != nil {
		return 0
	}
	return int(narrowed)
}
