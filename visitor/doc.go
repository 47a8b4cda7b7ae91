// Package visitor offers visitors over native Go slices.
// Elements are visited as value.Value with simple callback-based traversal.
package visitor
