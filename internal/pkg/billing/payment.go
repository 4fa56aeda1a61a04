package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/provatel/billing/app/models"
	"github.com/shopspring/decimal"
)

// PayBill applies a payment amount to the unique bill of (subscriberNo,
// month). The caller guarantees amount > 0. A missing subscriber or bill
// fails fast with ErrBillNotFound. On success a payment record is written and
// the bill balance updated as one atomic unit; the paid flag is recomputed
// from the new balance. Partial payments and overpayments are accepted under
// PolicyAcceptAlways.
func (s *Service) PayBill(subscriberNo string, month time.Time, amount decimal.Decimal) (*PaymentResult, error) {
	sub, err := s.repo.GetSubscriberByNo(subscriberNo)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	bill, err := s.repo.GetBill(sub.ID, month)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	alreadySettled := bill.IsPaid
	if alreadySettled && s.policy == PolicyRejectSettled {
		return nil, ErrBillSettled
	}

	payment := &models.Payment{
		ReferenceID: uuid.NewString(),
		Amount:      amount,
		Status:      models.PaymentStatusSuccessful,
	}
	updated, err := s.repo.RecordPayment(bill.ID, payment)
	if err != nil {
		return nil, err
	}

	return &PaymentResult{
		Bill: &BillRef{
			BillID:     updated.ID,
			BillTotal:  updated.BillTotal,
			AmountPaid: updated.AmountPaid,
			IsPaid:     updated.IsPaid,
		},
		Applied:        true,
		AlreadySettled: alreadySettled,
	}, nil
}
