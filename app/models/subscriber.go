package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Subscriber is the identity anchor for all billing data. The subscriber
// number is the externally visible key; the numeric ID never leaves the store.
type Subscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberNo string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"subscriber_no" validate:"required,min=3,max=32"`
	FullName     string    `gorm:"type:varchar(150);default:null" json:"full_name" validate:"max=150"`
	Bills        []Bill    `gorm:"foreignKey:SubscriberID" json:"bills,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Subscriber) Validate() error {
	v := validator.New()
	return v.Struct(s)
}
