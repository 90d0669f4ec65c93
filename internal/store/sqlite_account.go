package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "github.com/mattn/go-sqlite3"

	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/money"
)

func (s *Store) CreateAccount(ownerID, number int64, initialBalance money.Money) (*model.Account, error) {
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance %s: %w", initialBalance, model.ErrInvalidAmount)
	}

	createdAt := time.Now().UTC().Truncate(time.Second)

	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (owner_id, account_number, balance, created_at)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare account insert: %w", wrapStorage(err))
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(ownerID, number, initialBalance.Minor(), createdAt.Unix()).Scan(&newID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code == sqlite.ErrConstraint || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
				return nil, fmt.Errorf("account number %d: %w", number, model.ErrDuplicateAccountNumber)
			}
		}
		return nil, fmt.Errorf("failed to insert account: %w", wrapStorage(err))
	}

	return &model.Account{
		ID:        newID,
		OwnerID:   ownerID,
		Number:    number,
		Balance:   initialBalance,
		CreatedAt: createdAt,
	}, nil
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow(`
        SELECT id, owner_id, account_number, balance, created_at
        FROM accounts
        WHERE id = ?
    `, id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", id, model.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to query account %d: %w", id, wrapStorage(err))
	}
	return acc, nil
}

func (s *Store) GetAccountByNumber(number int64) (*model.Account, error) {
	row := s.db.QueryRow(`
        SELECT id, owner_id, account_number, balance, created_at
        FROM accounts
        WHERE account_number = ?
    `, number)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account number %d: %w", number, model.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to query account number %d: %w", number, wrapStorage(err))
	}
	return acc, nil
}

func (s *Store) GetAccountsByOwner(ownerID int64) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT id, owner_id, account_number, balance, created_at
        FROM accounts
        WHERE owner_id = ?
        ORDER BY account_number
    `, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts of owner %d: %w", ownerID, wrapStorage(err))
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", wrapStorage(err))
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", wrapStorage(err))
	}
	return accounts, nil
}

// CompareAndSetBalance performs a conditional write: the update lands
// only if the stored balance still equals expected. A lost race shows
// up as zero affected rows and is reported as model.ErrConflict.
func (s *Store) CompareAndSetBalance(id int64, expected, updated money.Money) error {
	if updated.IsNegative() {
		return fmt.Errorf("balance %s: %w", updated, model.ErrInvalidAmount)
	}

	result, err := s.db.Exec(`
        UPDATE accounts
        SET balance = ?
        WHERE id = ? AND balance = ?
    `, updated.Minor(), id, expected.Minor())
	if err != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", id, wrapStorage(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", wrapStorage(err))
	}
	if rowsAffected > 0 {
		return nil
	}

	// Zero rows means either the account is gone or somebody else won
	// the write. Distinguish the two for the caller.
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)", id)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("failed to check account existence: %w", wrapStorage(err))
	}
	if !exists {
		return fmt.Errorf("account %d: %w", id, model.ErrAccountNotFound)
	}
	return fmt.Errorf("account %d: %w", id, model.ErrConflict)
}

func (s *Store) DeleteAccount(id int64) error {
	result, err := s.db.Exec(`
        DELETE FROM accounts
        WHERE id = ?
    `, id)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, wrapStorage(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", wrapStorage(err))
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %d: %w", id, model.ErrAccountNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var balance int64
	var createdAt int64

	if err := row.Scan(&acc.ID, &acc.OwnerID, &acc.Number, &balance, &createdAt); err != nil {
		return nil, err
	}

	acc.Balance = money.FromMinor(balance)
	acc.CreatedAt = time.Unix(createdAt, 0).UTC()
	return acc, nil
}
