package loan

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusPaidOff  Status = "PAID_OFF"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaidOff:
		return true
	}
	return false
}

type Type string

const (
	TypePersonal Type = "PERSONAL"
	TypeBusiness Type = "BUSINESS"
	TypeMortgage Type = "MORTGAGE"
	TypeAuto     Type = "AUTO"
)

func (t Type) Valid() bool {
	switch t {
	case TypePersonal, TypeBusiness, TypeMortgage, TypeAuto:
		return true
	}
	return false
}

type Loan struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	BorrowerName   string          `gorm:"size:100;index" json:"borrower_name"`
	LoanAmount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"loan_amount"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(5,2)" json:"interest_rate"`
	LoanTermMonths int             `gorm:"column:loan_term_months" json:"loan_term_months"`
	LoanDate       time.Time       `gorm:"type:date" json:"loan_date"`
	Status         Status          `gorm:"size:16;index" json:"status"`
	LoanType       Type            `gorm:"size:16;index" json:"loan_type"`
	Description    string          `gorm:"type:text" json:"description"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// New returns a loan with the creation defaults applied: status PENDING and
// loan date set to today.
func New(borrowerName string, amount, rate decimal.Decimal, termMonths int, loanType Type) *Loan {
	return &Loan{
		BorrowerName:   borrowerName,
		LoanAmount:     amount,
		InterestRate:   rate,
		LoanTermMonths: termMonths,
		LoanType:       loanType,
		Status:         StatusPending,
		LoanDate:       Today(),
	}
}

// Today is the default loan date for new records (UTC, truncated to the day).
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// MonthlyPayment computes the fixed payment under standard amortization,
// rounded half-up to cents. A loan with no amount or no term amortizes to
// zero rather than failing. A zero rate is a valid zero-interest loan and
// pays amount/term.
func (l *Loan) MonthlyPayment() decimal.Decimal {
	if l.LoanAmount.IsZero() || l.LoanTermMonths == 0 {
		return decimal.Zero
	}

	principal := l.LoanAmount.InexactFloat64()
	months := float64(l.LoanTermMonths)
	monthlyRate := l.InterestRate.InexactFloat64() / 100 / 12

	if monthlyRate == 0 {
		// decimal.Round is half away from zero: half-up for positive values.
		return decimal.NewFromFloat(principal / months).Round(2)
	}

	pow := math.Pow(1+monthlyRate, months)
	payment := principal * (monthlyRate * pow) / (pow - 1)
	return decimal.NewFromFloat(payment).Round(2)
}
