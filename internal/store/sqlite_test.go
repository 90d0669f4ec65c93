package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/money"
	"github.com/nmorales/cuentas/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "cuentas.db")
	s, err := NewStore(dbPath, migrations.FS)
	if err != nil {
		t.Fatalf("NewStore err=%v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close err=%v", err)
		}
	})
	return s
}

func mustCreate(t *testing.T, s *Store, ownerID, number int64, balance string) *model.Account {
	t.Helper()
	acc, err := s.CreateAccount(ownerID, number, money.MustParse(balance))
	if err != nil {
		t.Fatalf("CreateAccount err=%v", err)
	}
	return acc
}

func TestCreateAndGetAccount(t *testing.T) {
	s := newTestStore(t)

	acc := mustCreate(t, s, 12, 1000000001, "100.00")
	if acc.ID == 0 {
		t.Fatalf("expected non-zero id")
	}

	got, err := s.GetAccountByID(acc.ID)
	if err != nil {
		t.Fatalf("GetAccountByID err=%v", err)
	}
	if got.OwnerID != 12 || got.Number != 1000000001 || got.Balance != money.MustParse("100.00") {
		t.Fatalf("got=%+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}

	byNumber, err := s.GetAccountByNumber(1000000001)
	if err != nil {
		t.Fatalf("GetAccountByNumber err=%v", err)
	}
	if byNumber.ID != acc.ID {
		t.Fatalf("byNumber.ID=%d want=%d", byNumber.ID, acc.ID)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetAccountByID(999); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if _, err := s.GetAccountByNumber(999); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateAccount(1, 1000000002, money.MustParse("-1.00")); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}

	mustCreate(t, s, 1, 1000000003, "0")
	if _, err := s.CreateAccount(2, 1000000003, money.MustParse("0")); !errors.Is(err, model.ErrDuplicateAccountNumber) {
		t.Fatalf("want ErrDuplicateAccountNumber, got %v", err)
	}
}

func TestGetAccountsByOwner(t *testing.T) {
	s := newTestStore(t)

	mustCreate(t, s, 7, 1000000010, "10.00")
	mustCreate(t, s, 7, 1000000011, "20.00")
	mustCreate(t, s, 8, 1000000012, "30.00")

	accounts, err := s.GetAccountsByOwner(7)
	if err != nil {
		t.Fatalf("GetAccountsByOwner err=%v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len=%d want=2", len(accounts))
	}
	if accounts[0].Number != 1000000010 || accounts[1].Number != 1000000011 {
		t.Fatalf("unexpected order: %d, %d", accounts[0].Number, accounts[1].Number)
	}

	empty, err := s.GetAccountsByOwner(99)
	if err != nil {
		t.Fatalf("GetAccountsByOwner err=%v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no accounts, got %d", len(empty))
	}
}

func TestCompareAndSetBalance(t *testing.T) {
	s := newTestStore(t)
	acc := mustCreate(t, s, 1, 1000000020, "100.00")

	// Matching expected balance wins.
	if err := s.CompareAndSetBalance(acc.ID, money.MustParse("100.00"), money.MustParse("60.00")); err != nil {
		t.Fatalf("CAS err=%v", err)
	}

	// A stale expected balance loses with ErrConflict.
	err := s.CompareAndSetBalance(acc.ID, money.MustParse("100.00"), money.MustParse("0"))
	if !errors.Is(err, model.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	// Unknown account is NotFound, not Conflict.
	err = s.CompareAndSetBalance(999, money.MustParse("1.00"), money.MustParse("2.00"))
	if !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}

	// Negative target balance is rejected before touching the row.
	err = s.CompareAndSetBalance(acc.ID, money.MustParse("60.00"), money.MustParse("-1.00"))
	if !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}

	got, err := s.GetAccountByID(acc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Balance != money.MustParse("60.00") {
		t.Fatalf("balance=%s want=60.00", got.Balance)
	}
}

func TestDeleteAccount(t *testing.T) {
	s := newTestStore(t)
	acc := mustCreate(t, s, 1, 1000000030, "0")

	if err := s.DeleteAccount(acc.ID); err != nil {
		t.Fatalf("DeleteAccount err=%v", err)
	}
	if err := s.DeleteAccount(acc.ID); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestAppendAndGetTransaction(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, 1, 1000000040, "100.00")
	b := mustCreate(t, s, 2, 1000000041, "0")

	rec, err := s.AppendTransaction(model.Transaction{
		OriginAccountID: a.ID,
		TargetAccountID: b.ID,
		Amount:          money.MustParse("40.00"),
		Kind:            model.KindTransfer,
	})
	if err != nil {
		t.Fatalf("AppendTransaction err=%v", err)
	}
	if rec.ID == "" {
		t.Fatalf("id not assigned")
	}
	if rec.OccurredAt.IsZero() {
		t.Fatalf("occurred_at not assigned")
	}

	got, err := s.GetTransactionByID(rec.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID err=%v", err)
	}
	if got.OriginAccountID != a.ID || got.TargetAccountID != b.ID ||
		got.Amount != money.MustParse("40.00") || got.Kind != model.KindTransfer {
		t.Fatalf("got=%+v", got)
	}

	if _, err := s.GetTransactionByID("no-such-id"); !errors.Is(err, model.ErrTransactionNotFound) {
		t.Fatalf("want ErrTransactionNotFound, got %v", err)
	}
}

func TestAppendTransactionRejectsNonPositive(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, 1, 1000000050, "0")

	_, err := s.AppendTransaction(model.Transaction{
		OriginAccountID: a.ID,
		TargetAccountID: a.ID,
		Amount:          money.MustParse("0"),
		Kind:            model.KindDeposit,
	})
	if !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
}

// backdate rewrites a record's commit timestamp so date-window tests
// can build multi-day histories without sleeping.
func backdate(t *testing.T, s *Store, id string, at time.Time) {
	t.Helper()
	if _, err := s.db.Exec("UPDATE transactions SET occurred_at = ? WHERE id = ?", at.Unix(), id); err != nil {
		t.Fatalf("backdate err=%v", err)
	}
}

func TestGetTransactionsByAccountWindow(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, 1, 1000000060, "100.00")
	b := mustCreate(t, s, 2, 1000000061, "100.00")

	day := func(n int) time.Time {
		return time.Date(2026, 3, n, 12, 0, 0, 0, time.UTC)
	}

	amounts := []string{"1.00", "2.00", "3.00"}
	for i, amt := range amounts {
		rec, err := s.AppendTransaction(model.Transaction{
			OriginAccountID: a.ID,
			TargetAccountID: b.ID,
			Amount:          money.MustParse(amt),
			Kind:            model.KindTransfer,
		})
		if err != nil {
			t.Fatal(err)
		}
		backdate(t, s, rec.ID, day(i+1))
	}

	// No bounds: all three, oldest first, visible from both sides.
	for _, accID := range []int64{a.ID, b.ID} {
		all, err := s.GetTransactionsByAccount(accID, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 3 {
			t.Fatalf("len=%d want=3", len(all))
		}
		for i, rec := range all {
			if rec.Amount != money.MustParse(amounts[i]) {
				t.Fatalf("pos %d amount=%s want=%s", i, rec.Amount, amounts[i])
			}
		}
	}

	// Inclusive bounds select the middle day.
	from, to := day(2), day(2)
	mid, err := s.GetTransactionsByAccount(a.ID, &from, &to)
	if err != nil {
		t.Fatal(err)
	}
	if len(mid) != 1 || mid[0].Amount != money.MustParse("2.00") {
		t.Fatalf("mid=%+v", mid)
	}

	// A window after all records is empty, not an error.
	later := day(20)
	none, err := s.GetTransactionsByAccount(a.ID, &later, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("len=%d want=0", len(none))
	}
}

func TestCountTransactionsByAccount(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, 1, 1000000070, "100.00")
	b := mustCreate(t, s, 2, 1000000071, "0")
	c := mustCreate(t, s, 3, 1000000072, "0")

	if _, err := s.AppendTransaction(model.Transaction{
		OriginAccountID: a.ID,
		TargetAccountID: b.ID,
		Amount:          money.MustParse("5.00"),
		Kind:            model.KindTransfer,
	}); err != nil {
		t.Fatal(err)
	}

	for accID, want := range map[int64]int64{a.ID: 1, b.ID: 1, c.ID: 0} {
		count, err := s.CountTransactionsByAccount(accID)
		if err != nil {
			t.Fatal(err)
		}
		if count != want {
			t.Fatalf("count(%d)=%d want=%d", accID, count, want)
		}
	}
}

// TestExecTxRollback checks the unit-of-work contract: when fn fails
// halfway, nothing it did survives.
func TestExecTxRollback(t *testing.T) {
	s := newTestStore(t)
	acc := mustCreate(t, s, 1, 1000000080, "100.00")

	sentinel := errors.New("boom")
	err := s.ExecTx(func(r Repository) error {
		if err := r.CompareAndSetBalance(acc.ID, money.MustParse("100.00"), money.MustParse("50.00")); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}

	got, err := s.GetAccountByID(acc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Balance != money.MustParse("100.00") {
		t.Fatalf("balance=%s want=100.00 (rollback failed)", got.Balance)
	}
}

func TestExecTxCommit(t *testing.T) {
	s := newTestStore(t)
	acc := mustCreate(t, s, 1, 1000000090, "100.00")

	err := s.ExecTx(func(r Repository) error {
		if err := r.CompareAndSetBalance(acc.ID, money.MustParse("100.00"), money.MustParse("50.00")); err != nil {
			return err
		}
		_, err := r.AppendTransaction(model.Transaction{
			OriginAccountID: acc.ID,
			TargetAccountID: acc.ID,
			Amount:          money.MustParse("50.00"),
			Kind:            model.KindWithdraw,
		})
		return err
	})
	if err != nil {
		t.Fatalf("ExecTx err=%v", err)
	}

	got, err := s.GetAccountByID(acc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Balance != money.MustParse("50.00") {
		t.Fatalf("balance=%s want=50.00", got.Balance)
	}

	count, err := s.CountTransactionsByAccount(acc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("count=%d want=1", count)
	}
}
