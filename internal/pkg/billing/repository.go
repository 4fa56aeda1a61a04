package billing

import (
	"time"

	"github.com/provatel/billing/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides the DB operations used by the billing service.
type Repository interface {
	GetSubscriberByID(id uint) (*models.Subscriber, error)
	GetSubscriberByNo(subscriberNo string) (*models.Subscriber, error)
	GetBill(subscriberID uint, month time.Time) (*models.Bill, error)
	BillExists(subscriberID uint, month time.Time) (bool, error)
	ListUnpaidBills(subscriberID uint) ([]models.Bill, error)
	CreateBill(bill *models.Bill) error
	CreateBills(bills []models.Bill) error
	RecordPayment(billID uint, payment *models.Payment) (*models.Bill, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetSubscriberByID(id uint) (*models.Subscriber, error) {
	var s models.Subscriber
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) GetSubscriberByNo(subscriberNo string) (*models.Subscriber, error) {
	var s models.Subscriber
	if err := r.db.Where("subscriber_no = ?", subscriberNo).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) GetBill(subscriberID uint, month time.Time) (*models.Bill, error) {
	var b models.Bill
	err := r.db.
		Where("subscriber_id = ? AND bill_month = ?", subscriberID, models.NormalizeBillMonth(month)).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) BillExists(subscriberID uint, month time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bill{}).
		Where("subscriber_id = ? AND bill_month = ?", subscriberID, models.NormalizeBillMonth(month)).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) ListUnpaidBills(subscriberID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.
		Where("subscriber_id = ? AND is_paid = ?", subscriberID, false).
		Order("bill_month ASC").
		Find(&bills).Error
	return bills, err
}

func (r *gormRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// CreateBills inserts all surviving batch rows as one committed unit.
func (r *gormRepository) CreateBills(bills []models.Bill) error {
	if len(bills) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&bills).Error
	})
}

// RecordPayment inserts the payment and updates the bill balance in a single
// transaction. The bill row is locked for the duration so that concurrent
// payments against the same bill serialize on the store instead of losing
// updates; a write conflict surfaces as a storage error.
func (r *gormRepository) RecordPayment(billID uint, payment *models.Payment) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bill, billID).Error; err != nil {
			return err
		}

		payment.BillID = bill.ID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		bill.ApplyPayment(payment.Amount)
		return tx.Model(&bill).Updates(map[string]interface{}{
			"amount_paid": bill.AmountPaid,
			"is_paid":     bill.IsPaid,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}
