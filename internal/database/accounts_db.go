package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx, so ownership checks can
// run both standalone and inside a database transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountBelongsToUser is the single ownership predicate used before any
// mutation or sensitive read that references an account.
func AccountBelongsToUser(q querier, userID, accID int) (bool, error) {
	var owned bool
	err := q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND user_id = $2)`,
		accID, userID).Scan(&owned)
	if err != nil {
		return false, fmt.Errorf("could not check account ownership: %w", err)
	}
	return owned, nil
}

// AccountsBelongToUser reports whether every given account belongs to the
// user. Ids are expected to be distinct.
func AccountsBelongToUser(q querier, userID int, accIDs ...int) (bool, error) {
	var count int
	err := q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM accounts WHERE id = ANY($1) AND user_id = $2`,
		accIDs, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("could not check account ownership: %w", err)
	}
	return count == len(accIDs), nil
}

func CreateAccount(pool *pgxpool.Pool, account *models.Account) error {
	if account.Name == "" {
		return models.NewValidationError("Nome é um atributo obrigatório")
	}

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE name = $1 AND user_id = $2)`,
		account.Name, account.UserID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("could not check account name: %w", err)
	}
	if exists {
		return models.NewValidationError("Já existe uma conta com esse nome")
	}

	query := `
		INSERT INTO accounts (name, user_id)
		VALUES ($1, $2)
		RETURNING id`
	err = pool.QueryRow(context.Background(), query, account.Name, account.UserID).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("could not create account: %w", err)
	}
	return nil
}

func GetAccountsByUserID(pool *pgxpool.Pool, userID int) ([]models.Account, error) {
	query := `SELECT id, name, user_id FROM accounts WHERE user_id = $1 ORDER BY id`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.UserID); err != nil {
			return nil, fmt.Errorf("could not scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// GetAccountByID returns the account when it belongs to the user. A missing
// account and another user's account both come back as ErrResourceNotOwned.
func GetAccountByID(pool *pgxpool.Pool, userID, id int) (*models.Account, error) {
	query := `SELECT id, name, user_id FROM accounts WHERE id = $1 AND user_id = $2`

	var acc models.Account
	err := pool.QueryRow(context.Background(), query, id, userID).Scan(&acc.ID, &acc.Name, &acc.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrResourceNotOwned
		}
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	return &acc, nil
}

func UpdateAccount(pool *pgxpool.Pool, userID int, account *models.Account) error {
	if account.Name == "" {
		return models.NewValidationError("Nome é um atributo obrigatório")
	}

	owned, err := AccountBelongsToUser(pool, userID, account.ID)
	if err != nil {
		return err
	}
	if !owned {
		return models.ErrResourceNotOwned
	}

	_, err = pool.Exec(context.Background(),
		`UPDATE accounts SET name = $1 WHERE id = $2`, account.Name, account.ID)
	if err != nil {
		return fmt.Errorf("could not update account: %w", err)
	}
	account.UserID = userID
	return nil
}

func DeleteAccount(pool *pgxpool.Pool, userID, id int) error {
	owned, err := AccountBelongsToUser(pool, userID, id)
	if err != nil {
		return err
	}
	if !owned {
		return models.ErrResourceNotOwned
	}

	var hasTransactions bool
	err = pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE acc_id = $1)`, id).Scan(&hasTransactions)
	if err != nil {
		return fmt.Errorf("could not check account transactions: %w", err)
	}
	if hasTransactions {
		return models.NewValidationError("Essa conta possui transações associadas")
	}

	_, err = pool.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete account: %w", err)
	}
	return nil
}
