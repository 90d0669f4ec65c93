package model

import (
	"testing"

	"github.com/nmorales/cuentas/internal/money"
)

func TestSignedAmountFor(t *testing.T) {
	amount := money.MustParse("40.00")

	cases := []struct {
		name      string
		rec       Transaction
		accountID int64
		want      money.Money
	}{
		{"deposit credits its account", Transaction{OriginAccountID: 1, TargetAccountID: 1, Amount: amount, Kind: KindDeposit}, 1, amount},
		{"withdraw debits its account", Transaction{OriginAccountID: 1, TargetAccountID: 1, Amount: amount, Kind: KindWithdraw}, 1, amount.Neg()},
		{"transfer debits origin", Transaction{OriginAccountID: 1, TargetAccountID: 2, Amount: amount, Kind: KindTransfer}, 1, amount.Neg()},
		{"transfer credits target", Transaction{OriginAccountID: 1, TargetAccountID: 2, Amount: amount, Kind: KindTransfer}, 2, amount},
		{"unrelated account is zero", Transaction{OriginAccountID: 1, TargetAccountID: 2, Amount: amount, Kind: KindTransfer}, 3, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.rec.SignedAmountFor(c.accountID); got != c.want {
				t.Fatalf("got=%s want=%s", got, c.want)
			}
		})
	}
}
