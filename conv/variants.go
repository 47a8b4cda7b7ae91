package conv

import (
	"github.com/viant/covary/value"
)

const (
	nullText         = "null"
	detailedNullText = "NULL"
)

// StringToInt parses base-10 text, yielding 0 when it is not an integer
type StringToInt struct{}

// Convert converts text to int
func (StringToInt) Convert(text string) int {
	return parseInt(text)
}

// Text renders a value with its default text representation, "null" when absent
type Text struct{}

// Convert converts value to text
func (Text) Convert(v value.Value) string {
	if v.IsAbsent() {
		return nullText
	}
	return v.String()
}

// DetailedText renders a value as "[TypeName: text]", "NULL" when absent
type DetailedText struct{}

// Convert converts value to detailed text
func (DetailedText) Convert(v value.Value) string {
	if v.IsAbsent() {
		return detailedNullText
	}
	return "[" + v.TypeName() + ": " + v.String() + "]"
}

// ValueToInt parses the text form of a value as a base-10 integer.
// Absent and unparseable values both yield 0.
type ValueToInt struct{}

// Convert converts value to int
func (ValueToInt) Convert(v value.Value) int {
	if v.IsAbsent() {
		return 0
	}
	return parseInt(v.String())
}

// FromString returns a converter accepting text for any value converter
func FromString[Out any](c Converter[value.Value, Out]) Converter[string, Out] {
	return Contramap(c, value.String)
}
