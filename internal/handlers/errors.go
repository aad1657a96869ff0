package handlers

import (
	"errors"
	"net/http"

	"github.com/camilaferreira/ledger-api/internal/middleware"
	"github.com/camilaferreira/ledger-api/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps the ledger error taxonomy onto HTTP. Validation failures
// surface their literal message with 400, ownership failures with 403, and
// anything else is a store failure reported generically; details stay in the
// server log only.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.Is(err, models.ErrNotAuthorized), errors.Is(err, models.ErrResourceNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
	}
}

// userID reads the id resolved by the auth middleware.
func userID(c *gin.Context) int {
	return c.GetInt(middleware.UserIDKey)
}
