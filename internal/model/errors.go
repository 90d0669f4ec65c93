package model

import "errors"

// The closed set of domain failures. Callers classify results with
// errors.Is; everything a storage or ledger operation can return wraps
// exactly one of these.
var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrAccountNotFound        = errors.New("account not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrDuplicateAccountNumber = errors.New("account number already in use")
	ErrSelfTransfer           = errors.New("origin and target account are the same")
	ErrLimitExceeded          = errors.New("amount exceeds the transfer limit")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAccountHasHistory      = errors.New("account has transaction history")
	ErrConflict               = errors.New("balance changed concurrently")
	ErrConcurrencyExhausted   = errors.New("gave up after repeated balance conflicts")
	ErrStorageUnavailable     = errors.New("storage unavailable")
)
