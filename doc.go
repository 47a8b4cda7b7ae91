// Package covary maps sequences through converters.
//
// Map applies a conv.Converter to every element of a slice, producing a new
// index-aligned slice of the same length. Converters never fail, so neither
// does Map.
package covary
