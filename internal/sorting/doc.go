// Package sorting provides the two comparison sorts the tool demonstrates.
//
// Both order bids ascending by title using Go's native byte-wise string
// comparison, in place. They exist side by side so their running times can
// be compared on the same data; neither is a general-purpose replacement
// for the standard library sort.
package sorting
