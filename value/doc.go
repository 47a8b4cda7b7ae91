// Package value defines Value, a closed tagged variant over the kinds of
// data the converters accept: integers, floats, strings, booleans, times,
// durations, and the absent value.
package value
