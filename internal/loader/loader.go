package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/rcypher/bidsort/internal/config"
	"github.com/rcypher/bidsort/internal/model"
	"github.com/rcypher/bidsort/internal/money"
)

// Load reads the configured CSV file and returns the bids it contains, in
// file order.
//
// Failures are never fatal: an unreadable file or a malformed row is logged,
// recorded on the Result, and loading continues with whatever was
// accumulated. The first row is treated as a header and discarded.
func Load(cfg config.InputConfig, logger *slog.Logger) model.Result {
	result := model.Result{SessionID: uuid.New()}

	logger.Info("loading CSV file", "path", cfg.Path, "session_id", result.SessionID)

	f, err := os.Open(cfg.Path)
	if err != nil {
		result.Err = fmt.Errorf("open input file: %w", err)
		logger.Error("failed to open input file", "path", cfg.Path, "error", err)
		return result
	}
	defer f.Close()

	result = readAll(decodeReader(f, cfg.Encoding), cfg, result, logger)

	logger.Info("load complete",
		"session_id", result.SessionID,
		"bids", len(result.Bids),
		"rows_read", result.RowsRead,
		"rows_skipped", result.RowsSkipped,
	)
	return result
}

// decodeReader wraps r with a charset decoder when the input is not UTF-8.
func decodeReader(r io.Reader, encoding string) io.Reader {
	if encoding == config.EncodingWindows1252 {
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	}
	return r
}

func readAll(r io.Reader, cfg config.InputConfig, result model.Result, logger *slog.Logger) model.Result {
	cr := csv.NewReader(r)
	// Rows in the source vary in width; handle that per row instead of
	// failing the whole file.
	cr.FieldsPerRecord = -1

	minFields := maxColumn(cfg.Columns) + 1
	header := true

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return result
		}
		if err != nil {
			// Structural failure mid-file (e.g. bare quote). Keep the
			// partial sequence.
			if result.Err == nil {
				result.Err = fmt.Errorf("read row: %w", err)
			}
			logger.Error("CSV read failed, keeping partial results", "error", err)
			return result
		}

		if header {
			header = false
			continue
		}
		result.RowsRead++

		if len(row) < minFields {
			result.RowsSkipped++
			if result.Err == nil {
				result.Err = fmt.Errorf("row %d: %d fields, need %d", result.RowsRead, len(row), minFields)
			}
			logger.Warn("skipping short row", "row", result.RowsRead, "fields", len(row), "need", minFields)
			continue
		}

		result.Bids = append(result.Bids, rowToBid(row, cfg))
	}
}

// rowToBid converts one data row using the configured column mapping.
// The amount cell is coerced to zero when unparseable.
func rowToBid(row []string, cfg config.InputConfig) model.Bid {
	return model.Bid{
		ID:     row[cfg.Columns.ID],
		Title:  row[cfg.Columns.Title],
		Fund:   row[cfg.Columns.Fund],
		Amount: money.Parse(row[cfg.Columns.Amount], cfg.StripByte()),
	}
}

func maxColumn(cols config.ColumnsConfig) int {
	max := cols.Title
	for _, c := range []int{cols.ID, cols.Amount, cols.Fund} {
		if c > max {
			max = c
		}
	}
	return max
}
