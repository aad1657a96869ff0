package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/camilaferreira/ledger-api/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates and persists a new user. The stored password is a
// bcrypt hash; the plaintext is cleared from the model before returning.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	if user.Name == "" {
		return models.NewValidationError("Nome é um atributo obrigatório")
	}
	if user.Email == "" {
		return models.NewValidationError("Email é um atributo obrigatório")
	}
	if user.Password == "" {
		return models.NewValidationError("Senha é um atributo obrigatório")
	}

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, user.Email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("could not check user email: %w", err)
	}
	if exists {
		return models.NewValidationError("Já existe um usuário com esse email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`
	err = pool.QueryRow(context.Background(), query, user.Name, user.Email, string(hash)).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}

	user.Password = ""
	return nil
}

// GetUserByID returns the user without the password column.
func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var user models.User
	err := pool.QueryRow(context.Background(), query, id).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d not found", id)
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return &user, nil
}
