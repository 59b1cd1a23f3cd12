package loanmock

import (
	"context"

	domain "loan-management-service/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository. Finders
// without a configured func report ErrNotFound; writers default to a no-op.
type Repo struct {
	FindAllFn                 func(ctx context.Context) ([]domain.Loan, error)
	FindByIDFn                func(ctx context.Context, id uint64) (*domain.Loan, error)
	SaveFn                    func(ctx context.Context, l *domain.Loan) error
	DeleteByIDFn              func(ctx context.Context, id uint64) error
	ExistsByIDFn              func(ctx context.Context, id uint64) (bool, error)
	FindByBorrowerNameFn      func(ctx context.Context, name string) ([]domain.Loan, error)
	FindByStatusFn            func(ctx context.Context, s domain.Status) ([]domain.Loan, error)
	FindByLoanTypeFn          func(ctx context.Context, t domain.Type) ([]domain.Loan, error)
	FindByStatusAndLoanTypeFn func(ctx context.Context, s domain.Status, t domain.Type) ([]domain.Loan, error)
}

func (m *Repo) FindAll(ctx context.Context) ([]domain.Loan, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) FindByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) DeleteByID(ctx context.Context, id uint64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil
}

func (m *Repo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, nil
}

func (m *Repo) FindByBorrowerName(ctx context.Context, name string) ([]domain.Loan, error) {
	if m.FindByBorrowerNameFn != nil {
		return m.FindByBorrowerNameFn(ctx, name)
	}
	return nil, nil
}

func (m *Repo) FindByStatus(ctx context.Context, s domain.Status) ([]domain.Loan, error) {
	if m.FindByStatusFn != nil {
		return m.FindByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) FindByLoanType(ctx context.Context, t domain.Type) ([]domain.Loan, error) {
	if m.FindByLoanTypeFn != nil {
		return m.FindByLoanTypeFn(ctx, t)
	}
	return nil, nil
}

func (m *Repo) FindByStatusAndLoanType(ctx context.Context, s domain.Status, t domain.Type) ([]domain.Loan, error) {
	if m.FindByStatusAndLoanTypeFn != nil {
		return m.FindByStatusAndLoanTypeFn(ctx, s, t)
	}
	return nil, nil
}
