package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ValidateTransfer applies the transfer rules in a fixed order; the first
// failing rule wins and its message is returned to the caller untouched.
// Field checks run before any database access.
func ValidateTransfer(pool *pgxpool.Pool, userID int, tr *models.Transfer) error {
	if tr.Description == "" {
		return models.NewValidationError("Descrição é um atributo obrigatório")
	}
	if tr.Amount.IsZero() {
		return models.NewValidationError("Valor da transferência é um atributo obrigatório")
	}
	if tr.Date.IsZero() {
		return models.NewValidationError("Data da transferência é um atributo obrigatório")
	}
	if tr.AccOriginID == 0 {
		return models.NewValidationError("ID da conta de origem é um atributo obrigatório")
	}
	if tr.AccDestinyID == 0 {
		return models.NewValidationError("ID da conta destino é um atributo obrigatório")
	}
	if tr.AccOriginID == tr.AccDestinyID {
		return models.NewValidationError("Não é possível transferir para a mesma conta")
	}

	owned, err := AccountsBelongToUser(pool, userID, tr.AccOriginID, tr.AccDestinyID)
	if err != nil {
		return err
	}
	if !owned {
		return models.NewValidationError("Conta não pertence ao usuário")
	}
	return nil
}

// transferTransactions derives the mirrored pair for a transfer: one
// confirmed outgoing transaction on the origin account with the negated
// amount and one confirmed incoming transaction on the destination account.
// Both reference the transfer id, so tr.ID must already be set.
func transferTransactions(tr *models.Transfer) (outgoing, incoming models.Transaction) {
	amount := tr.Amount.Abs()

	outgoing = models.Transaction{
		Description: fmt.Sprintf("Transfer from origin acc %d", tr.AccOriginID),
		Date:        tr.Date,
		Amount:      amount.Neg(),
		Type:        models.TransactionOutgoing,
		AccID:       tr.AccOriginID,
		Status:      true,
		TransferID:  &tr.ID,
	}
	incoming = models.Transaction{
		Description: fmt.Sprintf("Transfer to destiny acc %d", tr.AccDestinyID),
		Date:        tr.Date,
		Amount:      amount,
		Type:        models.TransactionIncome,
		AccID:       tr.AccDestinyID,
		Status:      true,
		TransferID:  &tr.ID,
	}
	return outgoing, incoming
}

// CreateTransfer inserts the transfer row and its two mirrored transactions
// inside a single database transaction. Either all three rows exist or none.
func CreateTransfer(pool *pgxpool.Pool, userID int, tr *models.Transfer) error {
	if err := ValidateTransfer(pool, userID, tr); err != nil {
		return err
	}
	tr.UserID = userID
	// stored transfers are always positive; the outgoing leg carries the sign
	tr.Amount = tr.Amount.Abs()

	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transfer creation: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO transfers (description, user_id, acc_origin_id, acc_destiny_id, amount, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err = tx.QueryRow(ctx, query,
		tr.Description, tr.UserID, tr.AccOriginID, tr.AccDestinyID, tr.Amount, tr.Date).Scan(&tr.ID)
	if err != nil {
		return fmt.Errorf("could not create transfer: %w", err)
	}

	outgoing, incoming := transferTransactions(tr)
	for _, t := range []models.Transaction{outgoing, incoming} {
		_, err = tx.Exec(ctx, `
			INSERT INTO transactions (description, date, amount, type, acc_id, status, transfer_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.Description, t.Date, t.Amount, t.Type, t.AccID, t.Status, t.TransferID)
		if err != nil {
			return fmt.Errorf("could not create transfer transaction: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit transfer creation: %w", err)
	}
	return nil
}

// GetTransferByID returns the transfer when it belongs to the user. A missing
// id and another user's id both come back as ErrNotAuthorized.
func GetTransferByID(pool *pgxpool.Pool, userID, id int) (*models.Transfer, error) {
	query := `
		SELECT id, description, user_id, acc_origin_id, acc_destiny_id, amount, date
		FROM transfers
		WHERE id = $1 AND user_id = $2`

	var tr models.Transfer
	err := pool.QueryRow(context.Background(), query, id, userID).Scan(
		&tr.ID, &tr.Description, &tr.UserID, &tr.AccOriginID, &tr.AccDestinyID, &tr.Amount, &tr.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotAuthorized
		}
		return nil, fmt.Errorf("could not get transfer: %w", err)
	}
	return &tr, nil
}

func GetTransfersByUserID(pool *pgxpool.Pool, userID int) ([]models.Transfer, error) {
	query := `
		SELECT id, description, user_id, acc_origin_id, acc_destiny_id, amount, date
		FROM transfers
		WHERE user_id = $1
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list transfers: %w", err)
	}
	defer rows.Close()

	transfers := []models.Transfer{}
	for rows.Next() {
		var tr models.Transfer
		err := rows.Scan(&tr.ID, &tr.Description, &tr.UserID, &tr.AccOriginID, &tr.AccDestinyID, &tr.Amount, &tr.Date)
		if err != nil {
			return nil, fmt.Errorf("could not scan transfer: %w", err)
		}
		transfers = append(transfers, tr)
	}
	return transfers, rows.Err()
}

// UpdateTransfer re-validates the input and rewrites the transfer row plus
// both linked transactions in one database transaction, keeping the
// transfer-id linkage intact.
func UpdateTransfer(pool *pgxpool.Pool, userID, id int, tr *models.Transfer) error {
	if _, err := GetTransferByID(pool, userID, id); err != nil {
		return err
	}
	if err := ValidateTransfer(pool, userID, tr); err != nil {
		return err
	}
	tr.ID = id
	tr.UserID = userID
	tr.Amount = tr.Amount.Abs()

	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transfer update: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE transfers
		SET description = $1, acc_origin_id = $2, acc_destiny_id = $3, amount = $4, date = $5
		WHERE id = $6`,
		tr.Description, tr.AccOriginID, tr.AccDestinyID, tr.Amount, tr.Date, tr.ID)
	if err != nil {
		return fmt.Errorf("could not update transfer: %w", err)
	}

	outgoing, incoming := transferTransactions(tr)
	for _, t := range []models.Transaction{outgoing, incoming} {
		_, err = tx.Exec(ctx, `
			UPDATE transactions
			SET description = $1, date = $2, amount = $3, acc_id = $4, status = $5
			WHERE transfer_id = $6 AND type = $7`,
			t.Description, t.Date, t.Amount, t.AccID, t.Status, tr.ID, t.Type)
		if err != nil {
			return fmt.Errorf("could not update transfer transaction: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit transfer update: %w", err)
	}
	return nil
}

// DeleteTransfer removes the transfer row and both mirrored transactions in
// one database transaction so no orphan can be left behind.
func DeleteTransfer(pool *pgxpool.Pool, userID, id int) error {
	if _, err := GetTransferByID(pool, userID, id); err != nil {
		return err
	}

	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transfer removal: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transfer_id = $1`, id); err != nil {
		return fmt.Errorf("could not delete transfer transactions: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transfers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("could not delete transfer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit transfer removal: %w", err)
	}
	return nil
}
