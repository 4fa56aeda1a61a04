package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/provatel/billing/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory Repository used by the service tests.
type fakeRepo struct {
	subscribers map[uint]*models.Subscriber
	bills       map[uint]*models.Bill
	payments    []*models.Payment
	nextSubID   uint
	nextBillID  uint
	failWith    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		subscribers: make(map[uint]*models.Subscriber),
		bills:       make(map[uint]*models.Bill),
	}
}

func (f *fakeRepo) addSubscriber(no, name string) *models.Subscriber {
	f.nextSubID++
	s := &models.Subscriber{ID: f.nextSubID, SubscriberNo: no, FullName: name}
	f.subscribers[s.ID] = s
	return s
}

func (f *fakeRepo) addBill(subscriberID uint, month time.Time, total string, details *string) *models.Bill {
	f.nextBillID++
	b := &models.Bill{
		ID:           f.nextBillID,
		SubscriberID: subscriberID,
		BillMonth:    models.NormalizeBillMonth(month),
		BillTotal:    decimal.RequireFromString(total),
		AmountPaid:   decimal.Zero,
		BillDetails:  details,
	}
	f.bills[b.ID] = b
	return b
}

func (f *fakeRepo) GetSubscriberByID(id uint) (*models.Subscriber, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if s, ok := f.subscribers[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetSubscriberByNo(subscriberNo string) (*models.Subscriber, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, s := range f.subscribers {
		if s.SubscriberNo == subscriberNo {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetBill(subscriberID uint, month time.Time) (*models.Bill, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	normalized := models.NormalizeBillMonth(month)
	for _, b := range f.bills {
		if b.SubscriberID == subscriberID && b.BillMonth.Equal(normalized) {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) BillExists(subscriberID uint, month time.Time) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, err := f.GetBill(subscriberID, month)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeRepo) ListUnpaidBills(subscriberID uint) ([]models.Bill, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var bills []models.Bill
	for _, b := range f.bills {
		if b.SubscriberID == subscriberID && !b.IsPaid {
			bills = append(bills, *b)
		}
	}
	// ascending by month
	for i := 0; i < len(bills); i++ {
		for j := i + 1; j < len(bills); j++ {
			if bills[j].BillMonth.Before(bills[i].BillMonth) {
				bills[i], bills[j] = bills[j], bills[i]
			}
		}
	}
	return bills, nil
}

func (f *fakeRepo) CreateBill(bill *models.Bill) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextBillID++
	bill.ID = f.nextBillID
	stored := *bill
	f.bills[bill.ID] = &stored
	return nil
}

func (f *fakeRepo) CreateBills(bills []models.Bill) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range bills {
		b := bills[i]
		if err := f.CreateBill(&b); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRepo) RecordPayment(billID uint, payment *models.Payment) (*models.Bill, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	bill, ok := f.bills[billID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	payment.ID = uint(len(f.payments) + 1)
	payment.BillID = billID
	if payment.ReferenceID == "" {
		payment.ReferenceID = uuid.NewString()
	}
	f.payments = append(f.payments, payment)
	bill.ApplyPayment(payment.Amount)
	return bill, nil
}

func mustMonth(s string) time.Time {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		panic(err)
	}
	return t
}
