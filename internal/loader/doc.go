// Package loader reads bid records from a delimited text file.
//
// The loader:
//   - Maps configured column indexes onto the Bid fields
//   - Discards the header row
//   - Skips rows too short for the column mapping and keeps going
//   - Returns partial results with the first error on any mid-file failure
//   - Optionally decodes Windows-1252 input to UTF-8
package loader
