package database

import (
	"context"
	"fmt"
	"time"

	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// GetBalances returns, per account of the user, the signed sum of confirmed
// transactions dated up to asOf (inclusive). Accounts without any counted
// transaction are omitted. Results are ordered by account id so consumers
// get a deterministic list.
func GetBalances(pool *pgxpool.Pool, userID int, asOf time.Time) ([]models.AccountBalance, error) {
	query := `
		SELECT a.id, SUM(t.amount)
		FROM transactions t
		JOIN accounts a ON a.id = t.acc_id
		WHERE a.user_id = $1 AND t.status = true AND t.date <= $2
		GROUP BY a.id
		ORDER BY a.id`

	rows, err := pool.Query(context.Background(), query, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("could not query balances: %w", err)
	}
	defer rows.Close()

	balances := []models.AccountBalance{}
	for rows.Next() {
		var accID int
		var sum decimal.Decimal
		if err := rows.Scan(&accID, &sum); err != nil {
			return nil, fmt.Errorf("could not scan balance: %w", err)
		}
		balances = append(balances, models.AccountBalance{ID: accID, Sum: sum.StringFixed(2)})
	}
	return balances, rows.Err()
}
