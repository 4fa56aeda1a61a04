package repository

import (
	"strings"

	"github.com/provatel/billing/app/models"
	"gorm.io/gorm"
)

// subscriberRepository implements the SubscriberRepository interface
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository instance
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create creates a new subscriber in the database
func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

// GetByID retrieves a subscriber by their internal ID, bills included
func (r *subscriberRepository) GetByID(id uint) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Preload("Bills").First(&subscriber, id).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetBySubscriberNo retrieves a subscriber by their subscriber number
func (r *subscriberRepository) GetBySubscriberNo(subscriberNo string) (*models.Subscriber, error) {
	trimmed := strings.TrimSpace(subscriberNo)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var subscriber models.Subscriber
	err := r.db.Preload("Bills").Where("subscriber_no = ?", trimmed).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// Update persists changes to an existing subscriber
func (r *subscriberRepository) Update(subscriber *models.Subscriber) error {
	return r.db.Save(subscriber).Error
}

// List retrieves subscribers with pagination
func (r *subscriberRepository) List(offset, limit int) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&subscribers).Error
	return subscribers, err
}

// Count returns the total number of subscribers
func (r *subscriberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).Count(&count).Error
	return count, err
}
