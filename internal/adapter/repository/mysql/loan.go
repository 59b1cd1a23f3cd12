package mysql

import (
	"context"
	"errors"
	"strings"

	loanDomain "loan-management-service/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) FindAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *LoanRepository) FindByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Save inserts when the loan has no id yet, otherwise overwrites the row.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	if l.ID == 0 {
		return r.db.WithContext(ctx).Create(l).Error
	}
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) DeleteByID(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&loanDomain.Loan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}

func (r *LoanRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// FindByBorrowerName lowers both sides so the substring match stays
// case-insensitive regardless of column collation.
func (r *LoanRepository) FindByBorrowerName(ctx context.Context, name string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(borrower_name) LIKE ?", pattern).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) FindByStatus(ctx context.Context, s loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).Where("status = ?", s).Order("id").Find(&out).Error
	return out, err
}

func (r *LoanRepository) FindByLoanType(ctx context.Context, t loanDomain.Type) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).Where("loan_type = ?", t).Order("id").Find(&out).Error
	return out, err
}

func (r *LoanRepository) FindByStatusAndLoanType(ctx context.Context, s loanDomain.Status, t loanDomain.Type) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("status = ? AND loan_type = ?", s, t).
		Order("id").
		Find(&out).Error
	return out, err
}
