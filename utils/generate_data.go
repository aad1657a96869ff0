package utils

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// GenerateTestData fills a development database with fake users, accounts,
// transactions and transfers, all created through the regular ledger code so
// the generated data respects the same invariants as real traffic.
func GenerateTestData(pool *pgxpool.Pool, numUsers, accountsPerUser, transactionsPerAccount int) {
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 10),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			logrus.Fatalf("could not generate user: %v", err)
		}

		accounts := make([]int, 0, accountsPerUser)
		for j := 0; j < accountsPerUser; j++ {
			account := &models.Account{
				Name:   gofakeit.NounAbstract() + " " + gofakeit.DigitN(4),
				UserID: user.ID,
			}
			if err := database.CreateAccount(pool, account); err != nil {
				logrus.Fatalf("could not generate account: %v", err)
			}
			accounts = append(accounts, account.ID)
		}

		for _, accID := range accounts {
			for k := 0; k < transactionsPerAccount; k++ {
				transaction := &models.Transaction{
					Description: gofakeit.ProductName(),
					Date:        gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
					Amount:      decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
					Type:        randomTransactionType(),
					AccID:       accID,
					Status:      gofakeit.Bool(),
				}
				if err := database.CreateTransaction(pool, user.ID, transaction); err != nil {
					logrus.Fatalf("could not generate transaction: %v", err)
				}
			}
		}

		if len(accounts) >= 2 {
			transfer := &models.Transfer{
				Description:  gofakeit.ProductName(),
				AccOriginID:  accounts[0],
				AccDestinyID: accounts[1],
				Amount:       decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
				Date:         time.Now(),
			}
			if err := database.CreateTransfer(pool, user.ID, transfer); err != nil {
				logrus.Fatalf("could not generate transfer: %v", err)
			}
		}
	}
}

func randomTransactionType() string {
	if rand.Intn(2) == 0 {
		return models.TransactionOutgoing
	}
	return models.TransactionIncome
}
