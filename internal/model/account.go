package model

import (
	"time"

	"github.com/nmorales/cuentas/internal/money"
)

type Account struct {
	ID        int64
	OwnerID   int64
	Number    int64
	Balance   money.Money
	CreatedAt time.Time
}
