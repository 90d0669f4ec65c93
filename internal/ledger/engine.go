// Package ledger holds the rules that keep account balances and the
// transaction log mutually consistent: every balance change goes
// through a compare-and-set on the store and commits in the same unit
// of work as its log record.
package ledger

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/money"
	"github.com/nmorales/cuentas/internal/store"
)

const (
	DefaultMaxRetries = 5

	// numberAttempts bounds the retries when generating a random
	// account number that collides with an existing one.
	numberAttempts = 10
)

type Config struct {
	// TransferLimit is the per-transaction ceiling for transfers.
	TransferLimit money.Money
	// MaxRetries bounds the optimistic-lock retry loop before an
	// operation gives up with ErrConcurrencyExhausted.
	MaxRetries int
}

type Engine struct {
	repo       store.Repository
	limit      money.Money
	maxRetries int
}

func NewEngine(repo store.Repository, cfg Config) *Engine {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Engine{
		repo:       repo,
		limit:      cfg.TransferLimit,
		maxRetries: maxRetries,
	}
}

// OpenAccount creates an account with a non-negative initial balance.
// When number is zero a random ten-digit account number is generated;
// a collision with an existing number is retried with a fresh one.
func (e *Engine) OpenAccount(ownerID, number int64, initialBalance money.Money) (*model.Account, error) {
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance %s: %w", initialBalance, model.ErrInvalidAmount)
	}

	if number != 0 {
		return e.repo.CreateAccount(ownerID, number, initialBalance)
	}

	for range numberAttempts {
		candidate := randomAccountNumber()
		acc, err := e.repo.CreateAccount(ownerID, candidate, initialBalance)
		if errors.Is(err, model.ErrDuplicateAccountNumber) {
			continue
		}
		return acc, err
	}
	return nil, fmt.Errorf("could not find a free account number: %w", model.ErrDuplicateAccountNumber)
}

// CloseAccount deletes the account if the transaction log holds no
// entry that references it as origin or target.
func (e *Engine) CloseAccount(accountID int64) error {
	return e.repo.ExecTx(func(r store.Repository) error {
		count, err := r.CountTransactionsByAccount(accountID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("account %d has %d transactions: %w", accountID, count, model.ErrAccountHasHistory)
		}
		return r.DeleteAccount(accountID)
	})
}

// Deposit credits amount to the account and returns the new balance.
func (e *Engine) Deposit(accountID int64, amount money.Money) (money.Money, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("deposit amount %s: %w", amount, model.ErrInvalidAmount)
	}

	for range e.maxRetries {
		acc, err := e.repo.GetAccountByID(accountID)
		if err != nil {
			return 0, err
		}

		updated := acc.Balance.Add(amount)
		err = e.repo.ExecTx(func(r store.Repository) error {
			if err := r.CompareAndSetBalance(acc.ID, acc.Balance, updated); err != nil {
				return err
			}
			_, err := r.AppendTransaction(model.Transaction{
				OriginAccountID: acc.ID,
				TargetAccountID: acc.ID,
				Amount:          amount,
				Kind:            model.KindDeposit,
			})
			return err
		})
		if errors.Is(err, model.ErrConflict) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return updated, nil
	}

	return 0, fmt.Errorf("deposit to account %d: %w", accountID, model.ErrConcurrencyExhausted)
}

// Withdraw debits amount from the account and returns the new balance.
// The sufficient-funds check runs against the freshly read balance on
// every retry attempt, never against a stale one.
func (e *Engine) Withdraw(accountID int64, amount money.Money) (money.Money, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("withdraw amount %s: %w", amount, model.ErrInvalidAmount)
	}

	for range e.maxRetries {
		acc, err := e.repo.GetAccountByID(accountID)
		if err != nil {
			return 0, err
		}

		if acc.Balance.Cmp(amount) < 0 {
			return 0, fmt.Errorf("account %d holds %s, requested %s: %w",
				accountID, acc.Balance, amount, model.ErrInsufficientFunds)
		}

		updated := acc.Balance.Sub(amount)
		err = e.repo.ExecTx(func(r store.Repository) error {
			if err := r.CompareAndSetBalance(acc.ID, acc.Balance, updated); err != nil {
				return err
			}
			_, err := r.AppendTransaction(model.Transaction{
				OriginAccountID: acc.ID,
				TargetAccountID: acc.ID,
				Amount:          amount,
				Kind:            model.KindWithdraw,
			})
			return err
		})
		if errors.Is(err, model.ErrConflict) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return updated, nil
	}

	return 0, fmt.Errorf("withdraw from account %d: %w", accountID, model.ErrConcurrencyExhausted)
}

// Transfer moves amount from the origin account to the target account.
// Both balance writes and the single log record commit atomically; if
// either compare-and-set loses a race the whole attempt rolls back and
// is retried against fresh balances.
func (e *Engine) Transfer(originID, targetID int64, amount money.Money) (*model.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount %s: %w", amount, model.ErrInvalidAmount)
	}
	if originID == targetID {
		return nil, fmt.Errorf("account %d: %w", originID, model.ErrSelfTransfer)
	}
	if e.limit.IsPositive() && amount.Cmp(e.limit) > 0 {
		return nil, fmt.Errorf("amount %s exceeds limit %s: %w", amount, e.limit, model.ErrLimitExceeded)
	}

	for range e.maxRetries {
		origin, err := e.repo.GetAccountByID(originID)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		target, err := e.repo.GetAccountByID(targetID)
		if err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}

		if origin.Balance.Cmp(amount) < 0 {
			return nil, fmt.Errorf("origin account %d holds %s, requested %s: %w",
				originID, origin.Balance, amount, model.ErrInsufficientFunds)
		}

		var rec *model.Transaction
		err = e.repo.ExecTx(func(r store.Repository) error {
			if err := r.CompareAndSetBalance(origin.ID, origin.Balance, origin.Balance.Sub(amount)); err != nil {
				return err
			}
			if err := r.CompareAndSetBalance(target.ID, target.Balance, target.Balance.Add(amount)); err != nil {
				return err
			}
			appended, err := r.AppendTransaction(model.Transaction{
				OriginAccountID: origin.ID,
				TargetAccountID: target.ID,
				Amount:          amount,
				Kind:            model.KindTransfer,
			})
			if err != nil {
				return err
			}
			rec = appended
			return nil
		})
		if errors.Is(err, model.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}

	return nil, fmt.Errorf("transfer %d -> %d: %w", originID, targetID, model.ErrConcurrencyExhausted)
}

func randomAccountNumber() int64 {
	// Ten digits, never starting with zero.
	return 1_000_000_000 + rand.Int64N(9_000_000_000)
}
