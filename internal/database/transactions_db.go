package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ValidateTransaction checks the required fields in a fixed order; the first
// failing rule produces the user-facing message.
func ValidateTransaction(t *models.Transaction) error {
	if t.Description == "" {
		return models.NewValidationError("Descrição é um atributo obrigatório")
	}
	if t.Date.IsZero() {
		return models.NewValidationError("Data é um atributo obrigatório")
	}
	if t.Amount.IsZero() {
		return models.NewValidationError("Valor é um atributo obrigatório")
	}
	if t.Type == "" {
		return models.NewValidationError("Tipo é um atributo obrigatório")
	}
	if t.AccID == 0 {
		return models.NewValidationError("Conta é um atributo obrigatório")
	}
	if t.Type != models.TransactionIncome && t.Type != models.TransactionOutgoing {
		return models.NewValidationError("Tipo inválido")
	}
	return nil
}

// normalizeAmount enforces the sign convention on the stored row: outgoing
// transactions carry a negative amount, incoming a positive one, whatever
// sign the caller sent. Balances sum raw stored amounts and rely on this.
func normalizeAmount(t *models.Transaction) {
	if t.Type == models.TransactionOutgoing {
		t.Amount = t.Amount.Abs().Neg()
	} else {
		t.Amount = t.Amount.Abs()
	}
}

// CreateTransaction persists a manual transaction with its amount normalized
// by type.
func CreateTransaction(pool *pgxpool.Pool, userID int, t *models.Transaction) error {
	if err := ValidateTransaction(t); err != nil {
		return err
	}
	normalizeAmount(t)

	owned, err := AccountBelongsToUser(pool, userID, t.AccID)
	if err != nil {
		return err
	}
	if !owned {
		return models.NewValidationError("Conta não pertence ao usuário")
	}

	query := `
		INSERT INTO transactions (description, date, amount, type, acc_id, status, transfer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err = pool.QueryRow(context.Background(), query,
		t.Description, t.Date, t.Amount, t.Type, t.AccID, t.Status, t.TransferID).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("could not create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID reaches the transaction through the accounts table, so a
// row of another user is indistinguishable from a missing one.
func GetTransactionByID(pool *pgxpool.Pool, userID, id int) (*models.Transaction, error) {
	query := `
		SELECT t.id, t.description, t.date, t.amount, t.type, t.acc_id, t.status, t.transfer_id
		FROM transactions t
		JOIN accounts a ON a.id = t.acc_id
		WHERE t.id = $1 AND a.user_id = $2`

	var t models.Transaction
	err := pool.QueryRow(context.Background(), query, id, userID).Scan(
		&t.ID, &t.Description, &t.Date, &t.Amount, &t.Type, &t.AccID, &t.Status, &t.TransferID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrResourceNotOwned
		}
		return nil, fmt.Errorf("could not get transaction: %w", err)
	}
	return &t, nil
}

func GetTransactionsByUserID(pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.description, t.date, t.amount, t.type, t.acc_id, t.status, t.transfer_id
		FROM transactions t
		JOIN accounts a ON a.id = t.acc_id
		WHERE a.user_id = $1
		ORDER BY t.id`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.Description, &t.Date, &t.Amount, &t.Type, &t.AccID, &t.Status, &t.TransferID)
		if err != nil {
			return nil, fmt.Errorf("could not scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func UpdateTransaction(pool *pgxpool.Pool, userID int, t *models.Transaction) error {
	existing, err := GetTransactionByID(pool, userID, t.ID)
	if err != nil {
		return err
	}
	if existing.TransferID != nil {
		return models.NewValidationError("Transação relacionada a uma transferência não pode ser alterada")
	}

	if err := ValidateTransaction(t); err != nil {
		return err
	}
	normalizeAmount(t)

	owned, err := AccountBelongsToUser(pool, userID, t.AccID)
	if err != nil {
		return err
	}
	if !owned {
		return models.NewValidationError("Conta não pertence ao usuário")
	}

	query := `
		UPDATE transactions
		SET description = $1, date = $2, amount = $3, type = $4, acc_id = $5, status = $6
		WHERE id = $7`
	_, err = pool.Exec(context.Background(), query,
		t.Description, t.Date, t.Amount, t.Type, t.AccID, t.Status, t.ID)
	if err != nil {
		return fmt.Errorf("could not update transaction: %w", err)
	}
	return nil
}

func DeleteTransaction(pool *pgxpool.Pool, userID, id int) error {
	existing, err := GetTransactionByID(pool, userID, id)
	if err != nil {
		return err
	}
	if existing.TransferID != nil {
		return models.NewValidationError("Transação relacionada a uma transferência não pode ser removida")
	}

	_, err = pool.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete transaction: %w", err)
	}
	return nil
}
