package billing

import (
	"strconv"
	"time"

	"github.com/provatel/billing/app/models"
)

const (
	paidLabel    = "Paid"
	notPaidLabel = "NotPaid"
)

func paidLabelFor(b models.Bill) string {
	if b.IsPaid {
		return paidLabel
	}
	return notPaidLabel
}

// GetBillSummary returns the summary of the unique bill for the given
// subscriber number and month. A missing subscriber or bill is a normal empty
// result: (nil, nil).
func (s *Service) GetBillSummary(subscriberNo string, month time.Time) (*BillSummary, error) {
	sub, err := s.repo.GetSubscriberByNo(subscriberNo)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	bill, err := s.repo.GetBill(sub.ID, month)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &BillSummary{
		SubscriberNo: sub.SubscriberNo,
		Month:        models.FormatBillMonth(bill.BillMonth),
		BillTotal:    bill.BillTotal,
		AmountPaid:   bill.AmountPaid,
		PaidStatus:   paidLabelFor(*bill),
	}, nil
}

// GetBillDetail returns one page of the decoded line items of a bill. The
// subscriber reference is resolved numeric-first: when it parses as an
// integer it is treated as the internal subscriber ID, otherwise as the
// subscriber number. An unknown subscriber or missing bill yields a page with
// zero items rather than an error. Page bounds (page >= 1,
// 1 <= pageSize <= 100) are validated by the caller.
func (s *Service) GetBillDetail(subscriberRef string, month time.Time, page, pageSize int) (*PagedBillDetail, error) {
	detail := &PagedBillDetail{
		SubscriberNo: subscriberRef,
		Month:        models.FormatBillMonth(models.NormalizeBillMonth(month)),
		Page:         page,
		PageSize:     pageSize,
		Items:        []DetailItem{},
	}

	sub, err := s.resolveSubscriber(subscriberRef)
	if err != nil {
		if isNotFound(err) {
			return detail, nil
		}
		return nil, err
	}
	detail.SubscriberNo = sub.SubscriberNo

	bill, err := s.repo.GetBill(sub.ID, month)
	if err != nil {
		if isNotFound(err) {
			return detail, nil
		}
		return nil, err
	}

	items := DecodeLineItems(bill.BillDetails)
	detail.TotalItems = len(items)
	detail.TotalPages = (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(items) {
		return detail, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	for i, item := range items[start:end] {
		detail.Items = append(detail.Items, DetailItem{
			LineNumber:      start + i + 1,
			Description:     item.Description(),
			Amount:          item.Amount,
			DataVolumeMB:    item.DataVolumeMB,
			DurationSeconds: item.DurationSeconds,
		})
	}
	return detail, nil
}

// GetUnpaidBills returns all unpaid bills of a subscriber ordered ascending
// by month. An unknown subscriber yields an empty slice.
func (s *Service) GetUnpaidBills(subscriberNo string) ([]BillSummary, error) {
	sub, err := s.repo.GetSubscriberByNo(subscriberNo)
	if err != nil {
		if isNotFound(err) {
			return []BillSummary{}, nil
		}
		return nil, err
	}

	bills, err := s.repo.ListUnpaidBills(sub.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]BillSummary, 0, len(bills))
	for _, b := range bills {
		summaries = append(summaries, BillSummary{
			SubscriberNo: sub.SubscriberNo,
			Month:        models.FormatBillMonth(b.BillMonth),
			BillTotal:    b.BillTotal,
			AmountPaid:   b.AmountPaid,
			PaidStatus:   paidLabelFor(b),
		})
	}
	return summaries, nil
}

// resolveSubscriber looks a subscriber up numeric-first: a reference that
// parses as an integer is tried as the internal ID before falling back to the
// subscriber-number lookup.
func (s *Service) resolveSubscriber(ref string) (*models.Subscriber, error) {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		sub, err := s.repo.GetSubscriberByID(uint(id))
		if err == nil || !isNotFound(err) {
			return sub, err
		}
	}
	return s.repo.GetSubscriberByNo(ref)
}
