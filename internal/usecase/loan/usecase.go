package loan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loan-management-service/internal/domain/loan"

	"github.com/shopspring/decimal"
)

const (
	loansPath     = "/api/loans"
	statsCacheKey = "loans:stats"
	dateLayout    = "2006-01-02"
)

// ErrInvalidInput marks payloads that slipped past boundary validation, such
// as a status or loanType outside the closed enumerations.
var ErrInvalidInput = errors.New("invalid input")

func checkEnums(in LoanInput) error {
	if in.Status != "" && !loan.Status(in.Status).Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	if in.LoanType != "" && !loan.Type(in.LoanType).Valid() {
		return fmt.Errorf("%w: unknown loanType %q", ErrInvalidInput, in.LoanType)
	}
	return nil
}

type Usecase struct {
	repo     loan.Repository
	cache    Cache
	statsTTL time.Duration
}

func NewUsecase(r loan.Repository, c Cache, statsTTL time.Duration) *Usecase {
	return &Usecase{repo: r, cache: c, statsTTL: statsTTL}
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*LoanDTO, error) {
	l, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(l, true), nil
}

func (u *Usecase) Create(ctx context.Context, in LoanInput) (*LoanDTO, error) {
	if err := checkEnums(in); err != nil {
		return nil, err
	}
	l := loan.New(
		in.BorrowerName,
		decimal.NewFromFloat(in.LoanAmount),
		decimal.NewFromFloat(in.InterestRate),
		in.LoanTermMonths,
		loan.Type(in.LoanType),
	)
	l.Description = in.Description
	if in.Status != "" {
		l.Status = loan.Status(in.Status)
	}
	if in.LoanDate != "" {
		d, err := time.Parse(dateLayout, in.LoanDate)
		if err != nil {
			return nil, fmt.Errorf("parse loanDate: %w", err)
		}
		l.LoanDate = d
	}

	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	u.invalidateStats(ctx)
	return toDTO(l, false), nil
}

// Update is a full replace: every mutable field comes from the payload, with
// the same defaulting as Create for status and loanDate. Only the id survives
// from the prior state.
func (u *Usecase) Update(ctx context.Context, id uint64, in LoanInput) (*LoanDTO, error) {
	if err := checkEnums(in); err != nil {
		return nil, err
	}
	l, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.BorrowerName = in.BorrowerName
	l.LoanAmount = decimal.NewFromFloat(in.LoanAmount)
	l.InterestRate = decimal.NewFromFloat(in.InterestRate)
	l.LoanTermMonths = in.LoanTermMonths
	l.Description = in.Description
	l.Status = loan.StatusPending
	if in.Status != "" {
		l.Status = loan.Status(in.Status)
	}
	l.LoanType = loan.Type(in.LoanType)
	l.LoanDate = loan.Today()
	if in.LoanDate != "" {
		d, err := time.Parse(dateLayout, in.LoanDate)
		if err != nil {
			return nil, fmt.Errorf("parse loanDate: %w", err)
		}
		l.LoanDate = d
	}

	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	u.invalidateStats(ctx)
	return toDTO(l, false), nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	ok, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return loan.ErrNotFound
	}
	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	u.invalidateStats(ctx)
	return nil
}

// Search keeps the reference API's filter precedence: a borrowerName filter is
// applied alone even when status or loanType are also supplied; otherwise
// status and loanType combine when both are present.
func (u *Usecase) Search(ctx context.Context, f SearchFilter) ([]LoanDTO, error) {
	var (
		ls  []loan.Loan
		err error
	)
	switch {
	case f.BorrowerName != "":
		ls, err = u.repo.FindByBorrowerName(ctx, f.BorrowerName)
	case f.Status != "" && f.LoanType != "":
		ls, err = u.repo.FindByStatusAndLoanType(ctx, loan.Status(f.Status), loan.Type(f.LoanType))
	case f.Status != "":
		ls, err = u.repo.FindByStatus(ctx, loan.Status(f.Status))
	case f.LoanType != "":
		ls, err = u.repo.FindByLoanType(ctx, loan.Type(f.LoanType))
	default:
		ls, err = u.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, statsCacheKey); ok {
			var s StatsDTO
			if err := json.Unmarshal([]byte(raw), &s); err == nil {
				return &s, nil
			}
		}
	}

	ls, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	var pending, approved int64
	for i := range ls {
		switch ls[i].Status {
		case loan.StatusPending:
			pending++
		case loan.StatusApproved:
			approved++
		}
		total = total.Add(ls[i].LoanAmount)
	}
	s := &StatsDTO{
		TotalLoans:    int64(len(ls)),
		PendingLoans:  pending,
		ApprovedLoans: approved,
		TotalAmount:   total.InexactFloat64(),
	}

	if u.cache != nil {
		if b, err := json.Marshal(s); err == nil {
			_ = u.cache.Set(ctx, statsCacheKey, string(b), u.statsTTL)
		}
	}
	return s, nil
}

// Mutations drop the memoized stats so the next read recomputes them. Cache
// errors are ignored: stale stats expire on their own via the TTL.
func (u *Usecase) invalidateStats(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.Del(ctx, statsCacheKey)
	}
}

func links(id uint64, detail bool) map[string]string {
	m := map[string]string{
		"self":  fmt.Sprintf("%s/%d", loansPath, id),
		"loans": loansPath,
	}
	if detail {
		m["update"] = fmt.Sprintf("%s/%d", loansPath, id)
		m["delete"] = fmt.Sprintf("%s/%d", loansPath, id)
	}
	return m
}

func toDTO(l *loan.Loan, detail bool) *LoanDTO {
	return &LoanDTO{
		ID:             l.ID,
		BorrowerName:   l.BorrowerName,
		LoanAmount:     l.LoanAmount.InexactFloat64(),
		InterestRate:   l.InterestRate.InexactFloat64(),
		LoanTermMonths: l.LoanTermMonths,
		LoanDate:       l.LoanDate.Format(dateLayout),
		Status:         string(l.Status),
		LoanType:       string(l.LoanType),
		Description:    l.Description,
		MonthlyPayment: l.MonthlyPayment().InexactFloat64(),
		Links:          links(l.ID, detail),
	}
}

func toDTOs(ls []loan.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i], false))
	}
	return out
}
