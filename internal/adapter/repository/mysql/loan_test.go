package mysql

import (
	"context"
	"errors"
	"testing"

	domain "loan-management-service/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the loan schema.
// sqlite ignores the mysql decimal column types, which is fine for tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func makeLoan(t *testing.T, name, amount string, status domain.Status, loanType domain.Type) *domain.Loan {
	t.Helper()
	l := domain.New(name, dec(t, amount), dec(t, "5.5"), 60, loanType)
	l.Status = status
	return l
}

func seed(t *testing.T, repo *LoanRepository, loans ...*domain.Loan) {
	t.Helper()
	ctx := context.Background()
	for _, l := range loans {
		if err := repo.Save(ctx, l); err != nil {
			t.Fatalf("seed Save: %v", err)
		}
	}
}

func TestSaveAssignsID(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan(t, "John Doe", "50000", domain.StatusPending, domain.TypePersonal)
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Save did not assign an id")
	}

	got, err := repo.FindByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.BorrowerName != "John Doe" || !got.LoanAmount.Equal(dec(t, "50000")) {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan(t, "John Doe", "50000", domain.StatusPending, domain.TypePersonal)
	seed(t, repo, l)

	l.Status = domain.StatusApproved
	l.LoanAmount = dec(t, "60000")
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := repo.FindByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != domain.StatusApproved || !got.LoanAmount.Equal(dec(t, "60000")) {
		t.Errorf("overwrite not persisted: %+v", got)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Save on existing id created a new row, have %d", len(all))
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))

	_, err := repo.FindByID(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByID(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan(t, "John Doe", "50000", domain.StatusPending, domain.TypePersonal)
	seed(t, repo, l)

	if err := repo.DeleteByID(ctx, l.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	// A subsequent lookup must also signal not found.
	if _, err := repo.FindByID(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.DeleteByID(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting missing id, got %v", err)
	}
}

func TestExistsByID(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan(t, "John Doe", "50000", domain.StatusPending, domain.TypePersonal)
	seed(t, repo, l)

	ok, err := repo.ExistsByID(ctx, l.ID)
	if err != nil || !ok {
		t.Fatalf("ExistsByID(%d) = %v, %v; want true", l.ID, ok, err)
	}
	ok, err = repo.ExistsByID(ctx, l.ID+1)
	if err != nil || ok {
		t.Fatalf("ExistsByID(missing) = %v, %v; want false", ok, err)
	}
}

func TestFindByBorrowerName_CaseInsensitiveSubstring(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	seed(t, repo,
		makeLoan(t, "John Doe", "50000", domain.StatusPending, domain.TypePersonal),
		makeLoan(t, "Johnny Cash", "20000", domain.StatusApproved, domain.TypeAuto),
		makeLoan(t, "Alice Brown", "10000", domain.StatusPending, domain.TypeBusiness),
	)

	got, err := repo.FindByBorrowerName(context.Background(), "JOHN")
	if err != nil {
		t.Fatalf("FindByBorrowerName: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %d, want 2 (%+v)", len(got), got)
	}
	if got[0].BorrowerName != "John Doe" || got[1].BorrowerName != "Johnny Cash" {
		t.Errorf("unexpected matches: %+v", got)
	}
}

func TestFindByStatusAndLoanType(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	seed(t, repo,
		makeLoan(t, "John Doe", "50000", domain.StatusPending, domain.TypePersonal),
		makeLoan(t, "Johnny Cash", "20000", domain.StatusApproved, domain.TypePersonal),
		makeLoan(t, "Alice Brown", "10000", domain.StatusPending, domain.TypeBusiness),
	)
	ctx := context.Background()

	byStatus, err := repo.FindByStatus(ctx, domain.StatusPending)
	if err != nil {
		t.Fatalf("FindByStatus: %v", err)
	}
	if len(byStatus) != 2 {
		t.Fatalf("pending = %d, want 2", len(byStatus))
	}

	byType, err := repo.FindByLoanType(ctx, domain.TypePersonal)
	if err != nil {
		t.Fatalf("FindByLoanType: %v", err)
	}
	if len(byType) != 2 {
		t.Fatalf("personal = %d, want 2", len(byType))
	}

	both, err := repo.FindByStatusAndLoanType(ctx, domain.StatusPending, domain.TypePersonal)
	if err != nil {
		t.Fatalf("FindByStatusAndLoanType: %v", err)
	}
	if len(both) != 1 || both[0].BorrowerName != "John Doe" {
		t.Fatalf("conjunction matches = %+v, want only John Doe", both)
	}
}
