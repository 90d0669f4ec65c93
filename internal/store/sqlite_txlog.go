package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/money"
)

// AppendTransaction inserts one log record. The id and occurred_at are
// assigned here, at commit time; the record passed in only carries the
// accounts, amount and kind.
func (s *Store) AppendTransaction(rec model.Transaction) (*model.Transaction, error) {
	if !rec.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount %s: %w", rec.Amount, model.ErrInvalidAmount)
	}

	rec.ID = uuid.NewString()
	rec.OccurredAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.Exec(`
        INSERT INTO transactions (id, origin_account_id, target_account_id, amount, kind, occurred_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, rec.ID, rec.OriginAccountID, rec.TargetAccountID, rec.Amount.Minor(), string(rec.Kind), rec.OccurredAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", wrapStorage(err))
	}

	return &rec, nil
}

func (s *Store) GetTransactionByID(id string) (*model.Transaction, error) {
	row := s.db.QueryRow(`
        SELECT id, origin_account_id, target_account_id, amount, kind, occurred_at
        FROM transactions
        WHERE id = ?
    `, id)

	rec, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, model.ErrTransactionNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction %s: %w", id, wrapStorage(err))
	}
	return rec, nil
}

func (s *Store) GetTransactionsByAccount(accountID int64, from, to *time.Time) ([]*model.Transaction, error) {
	query := `
        SELECT id, origin_account_id, target_account_id, amount, kind, occurred_at
        FROM transactions
        WHERE (origin_account_id = ? OR target_account_id = ?)
    `
	args := []any{accountID, accountID}

	if from != nil {
		query += " AND occurred_at >= ?"
		args = append(args, from.Unix())
	}
	if to != nil {
		query += " AND occurred_at <= ?"
		args = append(args, to.Unix())
	}

	query += " ORDER BY occurred_at ASC, rowid ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions of account %d: %w", accountID, wrapStorage(err))
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", wrapStorage(err))
		}
		transactions = append(transactions, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", wrapStorage(err))
	}
	return transactions, nil
}

func (s *Store) CountTransactionsByAccount(accountID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(`
        SELECT COUNT(*)
        FROM transactions
        WHERE origin_account_id = ? OR target_account_id = ?
    `, accountID, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions of account %d: %w", accountID, wrapStorage(err))
	}
	return count, nil
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	rec := &model.Transaction{}
	var amount int64
	var kind string
	var occurredAt int64

	if err := row.Scan(&rec.ID, &rec.OriginAccountID, &rec.TargetAccountID, &amount, &kind, &occurredAt); err != nil {
		return nil, err
	}

	rec.Amount = money.FromMinor(amount)
	rec.Kind = model.Kind(kind)
	rec.OccurredAt = time.Unix(occurredAt, 0).UTC()
	return rec, nil
}
