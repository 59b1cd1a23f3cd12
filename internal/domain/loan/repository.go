package loan

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("loan not found")

type Repository interface {
	FindAll(ctx context.Context) ([]Loan, error)
	// FindByID returns ErrNotFound when no loan has the given id.
	FindByID(ctx context.Context, id uint64) (*Loan, error)
	// Save inserts when the loan has no id yet, otherwise overwrites the row.
	Save(ctx context.Context, l *Loan) error
	// DeleteByID returns ErrNotFound when no loan has the given id.
	DeleteByID(ctx context.Context, id uint64) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// FindByBorrowerName matches on case-insensitive substring.
	FindByBorrowerName(ctx context.Context, name string) ([]Loan, error)
	FindByStatus(ctx context.Context, s Status) ([]Loan, error)
	FindByLoanType(ctx context.Context, t Type) ([]Loan, error)
	FindByStatusAndLoanType(ctx context.Context, s Status, t Type) ([]Loan, error)
}
