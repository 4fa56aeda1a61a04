package repository

import (
	"github.com/provatel/billing/app/models"
	"gorm.io/gorm"
)

// SubscriberRepository defines the interface for subscriber-related database
// operations used by the admin surface.
type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByID(id uint) (*models.Subscriber, error)
	GetBySubscriberNo(subscriberNo string) (*models.Subscriber, error)
	Update(subscriber *models.Subscriber) error
	List(offset, limit int) ([]models.Subscriber, error)
	Count() (int64, error)
}

// Repositories holds all repository instances
type Repositories struct {
	Subscriber SubscriberRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Subscriber: NewSubscriberRepository(db),
	}
}
