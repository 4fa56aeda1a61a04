package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillSummary is the read model returned by summary and unpaid-bill queries.
type BillSummary struct {
	SubscriberNo string          `json:"subscriber_no"`
	Month        string          `json:"month"`
	BillTotal    decimal.Decimal `json:"bill_total"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	PaidStatus   string          `json:"paid_status"`
}

// DetailItem is one rendered line of a paginated bill detail view.
type DetailItem struct {
	LineNumber      int             `json:"line_number"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	DataVolumeMB    int64           `json:"mb"`
	DurationSeconds int64           `json:"duration_seconds"`
}

// PagedBillDetail is a stable page over the decoded line items of one bill.
// A missing subscriber or bill yields a page with zero items, not an error.
type PagedBillDetail struct {
	SubscriberNo string       `json:"subscriber_no"`
	Month        string       `json:"month"`
	Page         int          `json:"page"`
	PageSize     int          `json:"page_size"`
	TotalItems   int          `json:"total_items"`
	TotalPages   int          `json:"total_pages"`
	Items        []DetailItem `json:"items"`
}

// PaymentResult reports the outcome of one payment application.
type PaymentResult struct {
	Bill    *BillRef `json:"bill"`
	Applied bool     `json:"applied"`
	// AlreadySettled is informational: the bill was fully paid before this
	// payment arrived. Under PolicyAcceptAlways the payment is still recorded.
	AlreadySettled bool `json:"already_settled"`
}

// BillRef carries the post-payment balance of the affected bill.
type BillRef struct {
	BillID     uint            `json:"bill_id"`
	BillTotal  decimal.Decimal `json:"bill_total"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	IsPaid     bool            `json:"is_paid"`
}

// BillRow is one pre-parsed candidate row for batch ingestion. Parsing of raw
// tabular input happens upstream (see internal/pkg/batchimport).
type BillRow struct {
	SubscriberID uint
	Month        time.Time
	Total        decimal.Decimal
	Details      *string
}

// RowOutcome classifies what happened to a single batch row.
type RowOutcome int

const (
	RowIngested RowOutcome = iota
	RowSkippedDuplicate
	RowSkippedUnknownSubscriber
)

func (o RowOutcome) String() string {
	switch o {
	case RowIngested:
		return "ingested"
	case RowSkippedDuplicate:
		return "skipped_duplicate"
	case RowSkippedUnknownSubscriber:
		return "skipped_unknown_subscriber"
	default:
		return "unknown"
	}
}

// RowResult pairs a batch row index with its outcome.
type RowResult struct {
	Index   int        `json:"index"`
	Outcome RowOutcome `json:"outcome"`
}

// BatchReport aggregates per-row outcomes of one batch ingestion run.
type BatchReport struct {
	Ingested         int         `json:"ingested"`
	SkippedDuplicate int         `json:"skipped_duplicate"`
	SkippedUnknown   int         `json:"skipped_unknown_subscriber"`
	Rows             []RowResult `json:"rows"`
}
