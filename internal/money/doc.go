// Package money converts currency-formatted strings to decimal values.
//
// The conversion is deliberately permissive: anything that does not parse
// becomes zero. This matches the source data, where amount cells are
// sometimes blank or carry stray formatting.
package money
