package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func strptr(s string) *string {
	return &s
}

func TestDecodeLineItems_EmptyPayload(t *testing.T) {
	if got := DecodeLineItems(nil); len(got) != 0 {
		t.Fatalf("expected no items for nil payload, got %d", len(got))
	}
	if got := DecodeLineItems(strptr("")); len(got) != 0 {
		t.Fatalf("expected no items for empty payload, got %d", len(got))
	}
	if got := DecodeLineItems(strptr("   ")); len(got) != 0 {
		t.Fatalf("expected no items for blank payload, got %d", len(got))
	}
}

func TestDecodeLineItems_MalformedPayload(t *testing.T) {
	tests := []string{
		"not json",
		`{"type":"call"}`, // object, not array
		`[1,2,3`,
		`"just a string"`,
	}
	for _, payload := range tests {
		if got := DecodeLineItems(strptr(payload)); len(got) != 0 {
			t.Fatalf("DecodeLineItems(%q) = %d items, want 0", payload, len(got))
		}
	}
}

func TestDecodeLineItems_FullItem(t *testing.T) {
	payload := `[{"type":"call","cost":"1.25","duration":30}]`
	items := DecodeLineItems(strptr(payload))
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Category != "call" {
		t.Fatalf("category = %q, want %q", item.Category, "call")
	}
	if !item.Amount.Equal(decimal.RequireFromString("1.25")) {
		t.Fatalf("amount = %s, want 1.25", item.Amount)
	}
	if item.DurationSeconds != 30 {
		t.Fatalf("duration = %d, want 30", item.DurationSeconds)
	}
	if got := item.Description(); got != "call (30s)" {
		t.Fatalf("description = %q, want %q", got, "call (30s)")
	}
}

func TestDecodeLineItems_FieldDefaults(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		category string
		amount   string
		mb       int64
		duration int64
	}{
		{name: "all fields missing", payload: `[{}]`, category: "Unknown", amount: "0"},
		{name: "numeric cost", payload: `[{"type":"data","cost":4.5,"mb":512}]`, category: "data", amount: "4.5", mb: 512},
		{name: "string mb", payload: `[{"type":"data","mb":"1024"}]`, category: "data", amount: "0", mb: 1024},
		{name: "malformed cost degrades", payload: `[{"type":"sms","cost":"abc"}]`, category: "sms", amount: "0"},
		{name: "malformed type degrades", payload: `[{"type":12,"cost":"2.00"}]`, category: "Unknown", amount: "2.00"},
		{name: "category alias", payload: `[{"category":"roaming","cost":"9.90"}]`, category: "roaming", amount: "9.90"},
		{name: "duration as string", payload: `[{"type":"call","duration":"120"}]`, category: "call", amount: "0", duration: 120},
	}

	for _, tt := range tests {
		items := DecodeLineItems(strptr(tt.payload))
		if len(items) != 1 {
			t.Fatalf("%s: expected 1 item, got %d", tt.name, len(items))
		}
		item := items[0]
		if item.Category != tt.category {
			t.Fatalf("%s: category = %q, want %q", tt.name, item.Category, tt.category)
		}
		if !item.Amount.Equal(decimal.RequireFromString(tt.amount)) {
			t.Fatalf("%s: amount = %s, want %s", tt.name, item.Amount, tt.amount)
		}
		if item.DataVolumeMB != tt.mb {
			t.Fatalf("%s: mb = %d, want %d", tt.name, item.DataVolumeMB, tt.mb)
		}
		if item.DurationSeconds != tt.duration {
			t.Fatalf("%s: duration = %d, want %d", tt.name, item.DurationSeconds, tt.duration)
		}
	}
}

func TestLineItemDescription_NoDuration(t *testing.T) {
	item := LineItem{Category: "data"}
	if got := item.Description(); got != "data" {
		t.Fatalf("description = %q, want %q", got, "data")
	}
}

func TestDecodeLineItems_PreservesOrder(t *testing.T) {
	payload := `[{"type":"a"},{"type":"b"},{"type":"c"}]`
	items := DecodeLineItems(strptr(payload))
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].Category != want {
			t.Fatalf("item %d category = %q, want %q", i, items[i].Category, want)
		}
	}
}
