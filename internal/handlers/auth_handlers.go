package handlers

import (
	"net/http"

	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/camilaferreira/ledger-api/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SignupHandler registers a new user. Token issuance lives in the identity
// layer, not here.
func SignupHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Entrada inválida"})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
