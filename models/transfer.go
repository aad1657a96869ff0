package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transfer struct {
	ID           int             `json:"id" db:"id"`
	Description  string          `json:"description" db:"description"`
	UserID       int             `json:"user_id" db:"user_id"`
	AccOriginID  int             `json:"acc_origin_id" db:"acc_origin_id"`
	AccDestinyID int             `json:"acc_destiny_id" db:"acc_destiny_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Date         time.Time       `json:"date" db:"date"`
}
