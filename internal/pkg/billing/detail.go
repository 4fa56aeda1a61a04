package billing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is used when a line item carries no usable type field.
const DefaultCategory = "Unknown"

// LineItem is one decoded usage entry from a bill's detail payload. It is a
// read-only projection, recomputed on every detailed query.
type LineItem struct {
	Category        string
	Amount          decimal.Decimal
	DataVolumeMB    int64
	DurationSeconds int64
}

// Description renders the line for the detailed view. Durations are appended
// in seconds when present.
func (li LineItem) Description() string {
	if li.DurationSeconds > 0 {
		return fmt.Sprintf("%s (%ds)", li.Category, li.DurationSeconds)
	}
	return li.Category
}

// DecodeLineItems parses a bill's embedded detail payload into line items.
// The payload is expected to be a JSON array of objects with loosely typed
// fields; anything that does not decode as such yields an empty slice, and a
// malformed field inside an item degrades to its default instead of dropping
// the item. Decoding is pure: the same payload always yields the same items.
func DecodeLineItems(payload *string) []LineItem {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(*payload)))
	dec.UseNumber()

	var raw []map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil
	}

	items := make([]LineItem, 0, len(raw))
	for _, fields := range raw {
		item := LineItem{
			Category: DefaultCategory,
			Amount:   decimal.Zero,
		}
		if cat := coerceString(fields["type"]); cat != "" {
			item.Category = cat
		} else if cat := coerceString(fields["category"]); cat != "" {
			item.Category = cat
		}
		item.Amount = coerceDecimal(fields["cost"])
		item.DataVolumeMB = coerceInt64(fields["mb"])
		item.DurationSeconds = coerceInt64(fields["duration"])
		items = append(items, item)
	}
	return items
}

func coerceString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// coerceDecimal accepts JSON numbers and numeric strings; anything else
// collapses to zero.
func coerceDecimal(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(val)); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(val)
	}
	return decimal.Zero
}

// coerceInt64 accepts JSON numbers and numeric strings, truncating any
// fractional part.
func coerceInt64(v interface{}) int64 {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return int64(f)
		}
	case string:
		trimmed := strings.TrimSpace(val)
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int64(f)
		}
	case float64:
		return int64(val)
	}
	return 0
}
