package billing

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/provatel/billing/app/models"
	"github.com/shopspring/decimal"
)

// AddBill creates a single bill for an existing subscriber. The detail
// payload is stored verbatim; an invalid payload is tolerated here and only
// surfaces later as empty decoded detail.
func (s *Service) AddBill(subscriberNo string, month time.Time, total decimal.Decimal, details *string) (*models.Bill, error) {
	sub, err := s.repo.GetSubscriberByNo(subscriberNo)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}

	exists, err := s.repo.BillExists(sub.ID, month)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBillExists
	}

	bill := &models.Bill{
		SubscriberID: sub.ID,
		BillMonth:    models.NormalizeBillMonth(month),
		BillTotal:    total,
		AmountPaid:   decimal.Zero,
		IsPaid:       false,
		BillDetails:  details,
	}
	if err := s.repo.CreateBill(bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// AddBillBatch ingests pre-parsed candidate rows. Rows referencing an unknown
// subscriber and rows whose (subscriber, month) pair already exists are
// skipped, which makes re-running the same batch a no-op. Surviving rows are
// inserted in one committed unit.
func (s *Service) AddBillBatch(rows []BillRow) (*BatchReport, error) {
	report := &BatchReport{Rows: make([]RowResult, 0, len(rows))}
	bills := make([]models.Bill, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		month := models.NormalizeBillMonth(row.Month)

		if _, err := s.repo.GetSubscriberByID(row.SubscriberID); err != nil {
			if !isNotFound(err) {
				return nil, err
			}
			log.Warnf("[Billing] skipping batch row %d: unknown subscriber %d", i, row.SubscriberID)
			report.SkippedUnknown++
			report.Rows = append(report.Rows, RowResult{Index: i, Outcome: RowSkippedUnknownSubscriber})
			continue
		}

		key := fmt.Sprintf("%d|%s", row.SubscriberID, models.FormatBillMonth(month))
		_, dupInBatch := seen[key]
		exists := false
		if !dupInBatch {
			var err error
			exists, err = s.repo.BillExists(row.SubscriberID, month)
			if err != nil {
				return nil, err
			}
		}
		if dupInBatch || exists {
			report.SkippedDuplicate++
			report.Rows = append(report.Rows, RowResult{Index: i, Outcome: RowSkippedDuplicate})
			continue
		}
		seen[key] = struct{}{}

		bills = append(bills, models.Bill{
			SubscriberID: row.SubscriberID,
			BillMonth:    month,
			BillTotal:    row.Total,
			AmountPaid:   decimal.Zero,
			IsPaid:       false,
			BillDetails:  row.Details,
		})
		report.Ingested++
		report.Rows = append(report.Rows, RowResult{Index: i, Outcome: RowIngested})
	}

	if err := s.repo.CreateBills(bills); err != nil {
		return nil, err
	}
	if report.Ingested > 0 || report.SkippedDuplicate > 0 || report.SkippedUnknown > 0 {
		log.Infof("[Billing] batch ingestion done: %d ingested, %d duplicate, %d unknown subscriber",
			report.Ingested, report.SkippedDuplicate, report.SkippedUnknown)
	}
	return report, nil
}
