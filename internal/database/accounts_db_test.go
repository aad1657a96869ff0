package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/camilaferreira/ledger-api/models"
)

func TestCreateAccountRequiresName(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	err := database.CreateAccount(pool, &models.Account{UserID: user.ID})
	if err == nil || err.Error() != "Nome é um atributo obrigatório" {
		t.Errorf("error = %v, want %q", err, "Nome é um atributo obrigatório")
	}
}

func TestCreateAccountRejectsDuplicateName(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	account := createTestAccount(t, pool, user.ID)

	err := database.CreateAccount(pool, &models.Account{Name: account.Name, UserID: user.ID})
	if err == nil || err.Error() != "Já existe uma conta com esse nome" {
		t.Errorf("error = %v, want %q", err, "Já existe uma conta com esse nome")
	}

	// same name under another user is fine
	other := createTestUser(t, pool)
	if err := database.CreateAccount(pool, &models.Account{Name: account.Name, UserID: other.ID}); err != nil {
		t.Errorf("same name for another user should be allowed: %v", err)
	}
}

func TestGetAccountsListsOnlyOwn(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	first := createTestAccount(t, pool, user.ID)
	second := createTestAccount(t, pool, user.ID)

	other := createTestUser(t, pool)
	createTestAccount(t, pool, other.ID)

	accounts, err := database.GetAccountsByUserID(pool, user.ID)
	if err != nil {
		t.Fatalf("could not list accounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].ID != first.ID || accounts[1].ID != second.ID {
		t.Errorf("accounts out of order: %+v", accounts)
	}
}

func TestAccountAccessOfAnotherUserIsForbidden(t *testing.T) {
	pool := testPool(t)
	owner := createTestUser(t, pool)
	account := createTestAccount(t, pool, owner.ID)

	intruder := createTestUser(t, pool)

	if _, err := database.GetAccountByID(pool, intruder.ID, account.ID); !errors.Is(err, models.ErrResourceNotOwned) {
		t.Errorf("get error = %v, want ErrResourceNotOwned", err)
	}

	account.Name = "renamed"
	if err := database.UpdateAccount(pool, intruder.ID, account); !errors.Is(err, models.ErrResourceNotOwned) {
		t.Errorf("update error = %v, want ErrResourceNotOwned", err)
	}
	if err := database.DeleteAccount(pool, intruder.ID, account.ID); !errors.Is(err, models.ErrResourceNotOwned) {
		t.Errorf("delete error = %v, want ErrResourceNotOwned", err)
	}
}

func TestDeleteAccountWithTransactionsIsBlocked(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	account := createTestAccount(t, pool, user.ID)
	addTransaction(t, pool, user.ID, account.ID, 100, models.TransactionIncome, true, time.Now())

	err := database.DeleteAccount(pool, user.ID, account.ID)
	if err == nil || err.Error() != "Essa conta possui transações associadas" {
		t.Errorf("error = %v, want %q", err, "Essa conta possui transações associadas")
	}

	empty := createTestAccount(t, pool, user.ID)
	if err := database.DeleteAccount(pool, user.ID, empty.ID); err != nil {
		t.Errorf("could not delete empty account: %v", err)
	}
}
