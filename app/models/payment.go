package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusSuccessful is the only status recorded by the core; failed
// attempts are rejected before a row is written.
const PaymentStatusSuccessful = "Successful"

// Payment is an append-only record of a single payment event against a bill.
// Rows are never updated or deleted.
type Payment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BillID      uint            `gorm:"not null;index" json:"bill_id"`
	Bill        Bill            `gorm:"foreignKey:BillID" json:"-"`
	ReferenceID string          `gorm:"type:char(36);uniqueIndex;not null" json:"reference_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'Successful'" json:"status"`
	PaymentDate time.Time       `gorm:"autoCreateTime" json:"payment_date"`
}
