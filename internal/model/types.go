package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid represents one procurement bid row.
type Bid struct {
	ID     string          // Opaque row identifier (uniqueness not enforced)
	Title  string          // Display title, the sort key
	Fund   string          // Funding source, descriptive only
	Amount decimal.Decimal // Monetary amount, zero when the source field is malformed
}

// String renders a bid in the one-line display format.
func (b Bid) String() string {
	return fmt.Sprintf("%s: %s | %s | %s", b.ID, b.Title, b.Amount, b.Fund)
}

// Result reports the outcome of one load session.
type Result struct {
	SessionID   uuid.UUID // Identifies this load in logs
	Bids        []Bid     // Records in file order; partial when Err is set
	RowsRead    int       // Data rows consumed (header excluded)
	RowsSkipped int       // Rows dropped for structural reasons
	Err         error     // First failure encountered, nil on a clean load
}
