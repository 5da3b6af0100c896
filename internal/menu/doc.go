// Package menu implements the interactive driver loop.
//
// The loop:
//   - Reads a single integer choice from the input stream
//   - Dispatches to load, display, selection sort, or quicksort
//   - Times each mutating operation and reports ticks and seconds
//   - Silently re-prompts on anything it does not recognize
//   - Exits cleanly on choice 9 or end of input
package menu
