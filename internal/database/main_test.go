package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// testPool connects to the database configured by .env / DATABASE_URL and
// skips the test when no database is reachable.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := database.ConnectDB()
	if err != nil {
		t.Skipf("database unavailable: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%d.%s", time.Now().UnixNano(), gofakeit.Email()),
		Password: gofakeit.Password(true, true, true, false, false, 10),
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("could not create test user: %v", err)
	}
	return user
}

func createTestAccount(t *testing.T, pool *pgxpool.Pool, userID int) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:   fmt.Sprintf("%s %d", gofakeit.Word(), time.Now().UnixNano()),
		UserID: userID,
	}
	if err := database.CreateAccount(pool, account); err != nil {
		t.Fatalf("could not create test account: %v", err)
	}
	return account
}

func addTransaction(t *testing.T, pool *pgxpool.Pool, userID, accID int, amount int64, typ string, status bool, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Description: gofakeit.ProductName(),
		Date:        date,
		Amount:      decimal.NewFromInt(amount),
		Type:        typ,
		AccID:       accID,
		Status:      status,
	}
	if err := database.CreateTransaction(pool, userID, transaction); err != nil {
		t.Fatalf("could not create test transaction: %v", err)
	}
	return transaction
}
