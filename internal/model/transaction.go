package model

import (
	"time"

	"github.com/nmorales/cuentas/internal/money"
)

type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
	KindTransfer Kind = "transfer"
)

// Transaction is one committed balance-affecting movement. Amount is
// always positive; the sign relative to an account follows from Kind
// and which side of the movement the account is on. For deposits and
// withdrawals OriginAccountID == TargetAccountID.
type Transaction struct {
	ID              string
	OriginAccountID int64
	TargetAccountID int64
	Amount          money.Money
	Kind            Kind
	OccurredAt      time.Time
}

// SignedAmountFor returns the effect of the transaction on the given
// account: positive for money flowing in, negative for money flowing
// out, zero if the account is not involved.
func (t *Transaction) SignedAmountFor(accountID int64) money.Money {
	switch t.Kind {
	case KindDeposit:
		if t.TargetAccountID == accountID {
			return t.Amount
		}
	case KindWithdraw:
		if t.OriginAccountID == accountID {
			return t.Amount.Neg()
		}
	case KindTransfer:
		if t.OriginAccountID == accountID {
			return t.Amount.Neg()
		}
		if t.TargetAccountID == accountID {
			return t.Amount
		}
	}
	return 0
}
