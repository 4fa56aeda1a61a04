package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is one monthly obligation per (subscriber, calendar month). The pair is
// enforced unique; BillMonth always holds the first day of the month.
type Bill struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	SubscriberID uint            `gorm:"not null;index:ux_bills_subscriber_month,unique,priority:1" json:"subscriber_id"`
	Subscriber   Subscriber      `gorm:"foreignKey:SubscriberID" json:"-"`
	BillMonth    time.Time       `gorm:"type:date;not null;index:ux_bills_subscriber_month,unique,priority:2" json:"bill_month"`
	BillTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"bill_total"`
	AmountPaid   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amount_paid"`
	IsPaid       bool            `gorm:"not null;default:false" json:"is_paid"`
	BillDetails  *string         `gorm:"type:json" json:"bill_details,omitempty"`
	Payments     []Payment       `gorm:"foreignKey:BillID" json:"payments,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaidStatus derives the paid flag from its inputs. IsPaid is never written
// from anywhere else, so the stored flag cannot drift from the balance.
func PaidStatus(amountPaid, total decimal.Decimal) bool {
	return amountPaid.GreaterThanOrEqual(total)
}

// ApplyPayment adds a payment amount to the running balance and recomputes
// the paid flag.
func (b *Bill) ApplyPayment(amount decimal.Decimal) {
	b.AmountPaid = b.AmountPaid.Add(amount)
	b.IsPaid = PaidStatus(b.AmountPaid, b.BillTotal)
}

// NormalizeBillMonth truncates a timestamp to calendar-month granularity.
func NormalizeBillMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FormatBillMonth renders a bill month in the wire format used by the API.
func FormatBillMonth(t time.Time) string {
	return t.Format("2006-01")
}
