package ledger

import (
	"time"

	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/store"
)

// Query exposes the read-only projections over the account store and
// transaction log. It never writes and never blocks the engine.
type Query struct {
	repo store.Repository
}

func NewQuery(repo store.Repository) *Query {
	return &Query{repo: repo}
}

func (q *Query) AccountByID(id int64) (*model.Account, error) {
	return q.repo.GetAccountByID(id)
}

func (q *Query) AccountByNumber(number int64) (*model.Account, error) {
	return q.repo.GetAccountByNumber(number)
}

func (q *Query) AccountsByOwner(ownerID int64) ([]*model.Account, error) {
	return q.repo.GetAccountsByOwner(ownerID)
}

func (q *Query) TransactionByID(id string) (*model.Transaction, error) {
	return q.repo.GetTransactionByID(id)
}

// History returns the transactions touching the account as origin or
// target, oldest first. from and to are inclusive and each optional.
func (q *Query) History(accountID int64, from, to *time.Time) ([]*model.Transaction, error) {
	if _, err := q.repo.GetAccountByID(accountID); err != nil {
		return nil, err
	}
	return q.repo.GetTransactionsByAccount(accountID, from, to)
}
