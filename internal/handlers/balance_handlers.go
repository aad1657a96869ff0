package handlers

import (
	"net/http"
	"time"

	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetBalancesHandler reports the per-account balance of the requesting user.
// An optional as_of query parameter (RFC 3339) moves the cutoff; it defaults
// to the moment of the call.
func GetBalancesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		asOf := time.Now()
		if raw := c.Query("as_of"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
				return
			}
			asOf = parsed
		}

		balances, err := database.GetBalances(pool, userID(c), asOf)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, balances)
	}
}
