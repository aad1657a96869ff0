package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome   = "I"
	TransactionOutgoing = "O"
)

type Transaction struct {
	ID          int             `json:"id" db:"id"`
	Description string          `json:"description" db:"description"`
	Date        time.Time       `json:"date" db:"date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Type        string          `json:"type" db:"type"` // "I" (entrada) ou "O" (saída)
	AccID       int             `json:"acc_id" db:"acc_id"`
	Status      bool            `json:"status" db:"status"`
	TransferID  *int            `json:"transfer_id,omitempty" db:"transfer_id"`
}
