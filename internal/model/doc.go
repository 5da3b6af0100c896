// Package model defines the shared data types for the bid sorting tool.
//
// Conventions:
//   - Money: decimal.Decimal, exact arithmetic, zero for unparseable input
//   - IDs: string for bid rows, uuid.UUID for load sessions
package model
