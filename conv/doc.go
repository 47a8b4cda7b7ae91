// Package conv provides single value converters and variance adapters.
//
// A Converter maps one input value to one output value and never fails:
// malformed or absent input degrades to the variant's default output.
// Go has no declaration-site variance, so substituting a converter for a
// broader input (contravariance) or a narrower output (covariance) is
// expressed with the Contramap, Covary and Widen adapters.
package conv
