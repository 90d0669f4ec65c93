package store

import (
	"time"

	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/money"
)

type AccountRepository interface {
	CreateAccount(ownerID, number int64, initialBalance money.Money) (*model.Account, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountByNumber(number int64) (*model.Account, error)
	GetAccountsByOwner(ownerID int64) ([]*model.Account, error)

	// CompareAndSetBalance is the sole balance mutation primitive. It
	// writes updated only if the stored balance still equals expected,
	// otherwise it returns model.ErrConflict and the caller must
	// re-read and retry.
	CompareAndSetBalance(id int64, expected, updated money.Money) error

	DeleteAccount(id int64) error
}

type TransactionRepository interface {
	// AppendTransaction assigns the record id and commit timestamp and
	// inserts the record. The ledger engine only calls it inside the
	// same unit of work as the balance mutation it describes.
	AppendTransaction(rec model.Transaction) (*model.Transaction, error)

	GetTransactionByID(id string) (*model.Transaction, error)

	// GetTransactionsByAccount returns every transaction touching the
	// account as origin or target, oldest first, optionally bounded by
	// the inclusive [from, to] window.
	GetTransactionsByAccount(accountID int64, from, to *time.Time) ([]*model.Transaction, error)

	CountTransactionsByAccount(accountID int64) (int64, error)
}

type Repository interface {
	AccountRepository
	TransactionRepository

	// ExecTx runs fn inside a single database transaction. Any error
	// returned by fn rolls the whole unit of work back.
	ExecTx(fn func(Repository) error) error

	Close() error
}
