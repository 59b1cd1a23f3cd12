package loan

import (
	"context"
	"time"
)

// LoanInput is the payload for create and full-overwrite update. Validation
// tags mirror the entity constraints; status and loanType are closed
// enumerations and unrecognized values are rejected at the boundary.
// interestRate carries no "required" tag: zero is a legal zero-interest rate.
type LoanInput struct {
	BorrowerName   string  `json:"borrowerName" validate:"required,min=2,max=100"`
	LoanAmount     float64 `json:"loanAmount" validate:"required,gte=100,lte=1000000"`
	InterestRate   float64 `json:"interestRate" validate:"gte=0,lte=30"`
	LoanTermMonths int     `json:"loanTermMonths" validate:"required,gte=1,lte=360"`
	LoanDate       string  `json:"loanDate" validate:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED PAID_OFF"`
	LoanType       string  `json:"loanType" validate:"omitempty,oneof=PERSONAL BUSINESS MORTGAGE AUTO"`
	Description    string  `json:"description"`
}

// LoanDTO is the API representation of a loan. Links carries the plain-JSON
// navigation references (self, loans, and update/delete on detail views).
type LoanDTO struct {
	ID             uint64            `json:"id"`
	BorrowerName   string            `json:"borrowerName"`
	LoanAmount     float64           `json:"loanAmount"`
	InterestRate   float64           `json:"interestRate"`
	LoanTermMonths int               `json:"loanTermMonths"`
	LoanDate       string            `json:"loanDate"`
	Status         string            `json:"status"`
	LoanType       string            `json:"loanType,omitempty"`
	Description    string            `json:"description,omitempty"`
	MonthlyPayment float64           `json:"monthlyPayment"`
	Links          map[string]string `json:"_links,omitempty"`
}

type StatsDTO struct {
	TotalLoans    int64   `json:"totalLoans"`
	PendingLoans  int64   `json:"pendingLoans"`
	ApprovedLoans int64   `json:"approvedLoans"`
	TotalAmount   float64 `json:"totalAmount"`
}

// SearchFilter holds the optional search parameters. Empty fields are unset.
type SearchFilter struct {
	BorrowerName string
	Status       string
	LoanType     string
}

// Cache is the optional read-through store for computed statistics. A nil
// Cache disables memoization.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
