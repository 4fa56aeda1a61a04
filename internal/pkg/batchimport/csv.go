// Package batchimport parses externally supplied tabular bill data into the
// pre-resolved candidate rows the billing core ingests. Row-level validation
// lives here; persistence and duplicate suppression live in the core.
package batchimport

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/provatel/billing/internal/pkg/billing"
	"github.com/shopspring/decimal"
)

// ErrNoRows is returned when no parseable bill rows are found in the input.
var ErrNoRows = errors.New("no valid bill rows found")

// Columns: subscriber_id, month (yyyy-MM), total, optional details JSON.
const (
	colSubscriberID = 0
	colMonth        = 1
	colTotal        = 2
	colDetails      = 3
)

// ParseBillRows reads CSV input into batch candidate rows. The first record
// is treated as a header when its first column is not numeric. Malformed rows
// are skipped rather than failing the whole file, matching the per-row
// tolerance of batch ingestion itself.
func ParseBillRows(r io.Reader) ([]billing.BillRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // details column is optional
	reader.LazyQuotes = true

	rows := make([]billing.BillRow, 0)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if len(record) <= colTotal {
			continue
		}

		subscriberID, err := strconv.ParseUint(strings.TrimSpace(record[colSubscriberID]), 10, 64)
		if err != nil {
			if line > 1 {
				log.Debugf("[BatchImport] skipping line %d: bad subscriber id %q", line, record[colSubscriberID])
			}
			continue // header or garbage
		}

		month, err := time.Parse("2006-01", strings.TrimSpace(record[colMonth]))
		if err != nil {
			log.Debugf("[BatchImport] skipping line %d: bad month %q", line, record[colMonth])
			continue
		}

		total, err := decimal.NewFromString(strings.TrimSpace(record[colTotal]))
		if err != nil || total.IsNegative() {
			log.Debugf("[BatchImport] skipping line %d: bad total %q", line, record[colTotal])
			continue
		}

		var details *string
		if len(record) > colDetails {
			details = cleanDetails(record[colDetails])
		}

		rows = append(rows, billing.BillRow{
			SubscriberID: uint(subscriberID),
			Month:        month,
			Total:        total,
			Details:      details,
		})
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// cleanDetails unwraps a JSON detail field that may still carry CSV-style
// quoting (wrapping quotes, doubled inner quotes) from the exporting system.
// Anything that is not valid JSON after cleanup is dropped; the bill is still
// ingested and just renders empty detail later.
func cleanDetails(raw string) *string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}
	if strings.HasPrefix(cleaned, "\"") && strings.HasSuffix(cleaned, "\"") && len(cleaned) >= 2 {
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	cleaned = strings.ReplaceAll(cleaned, `""`, `"`)

	if !json.Valid([]byte(cleaned)) {
		return nil
	}
	return &cleaned
}
