package billing

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrSubscriberNotFound is returned by write paths that require an
	// existing subscriber.
	ErrSubscriberNotFound = errors.New("subscriber does not exist")
	// ErrBillNotFound is returned when a payment targets a bill that does
	// not exist for the given (subscriber, month).
	ErrBillNotFound = errors.New("bill not found")
	// ErrBillExists is returned when a bill already exists for the
	// (subscriber, month) pair.
	ErrBillExists = errors.New("bill already exists")
	// ErrBillSettled is returned under PolicyRejectSettled when a payment
	// targets an already fully paid bill.
	ErrBillSettled = errors.New("bill already settled")
)

// OverpaymentPolicy names the behavior when a payment arrives for a bill that
// is already fully paid. The upstream system always accepted such payments;
// PolicyAcceptAlways preserves that and is the default.
type OverpaymentPolicy int

const (
	PolicyAcceptAlways OverpaymentPolicy = iota
	PolicyRejectSettled
)

// Service implements the billing core: bill queries, payment application and
// bill ingestion. It holds no state between calls; all serialization of
// conflicting writes is delegated to the store.
type Service struct {
	repo   Repository
	policy OverpaymentPolicy
}

// NewService creates a billing service from an injected repository with the
// default overpayment policy.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, policy: PolicyAcceptAlways}
}

// NewServiceWithPolicy creates a billing service with an explicit overpayment
// policy.
func NewServiceWithPolicy(repo Repository, policy OverpaymentPolicy) *Service {
	return &Service{repo: repo, policy: policy}
}

// NewServiceFromDB creates a billing service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
