package routes

import (
	"net/http"

	"github.com/camilaferreira/ledger-api/internal/handlers"
	"github.com/camilaferreira/ledger-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupRouter wires every route of the API. Everything except signup and the
// health root sits behind the auth middleware.
func SetupRouter(pool *pgxpool.Pool, jwtSecret string) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.POST("/auth/signup", handlers.SignupHandler(pool))

	authorized := r.Group("/", middleware.Auth(jwtSecret))

	authorized.GET("/accounts", handlers.GetAccountsHandler(pool))
	authorized.POST("/accounts", handlers.CreateAccountHandler(pool))
	authorized.GET("/accounts/:id", handlers.GetAccountHandler(pool))
	authorized.PUT("/accounts/:id", handlers.UpdateAccountHandler(pool))
	authorized.DELETE("/accounts/:id", handlers.DeleteAccountHandler(pool))

	authorized.GET("/transactions", handlers.GetTransactionsHandler(pool))
	authorized.POST("/transactions", handlers.CreateTransactionHandler(pool))
	authorized.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
	authorized.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool))
	authorized.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

	authorized.GET("/transfers", handlers.GetTransfersHandler(pool))
	authorized.POST("/transfers", handlers.CreateTransferHandler(pool))
	authorized.GET("/transfers/:id", handlers.GetTransferHandler(pool))
	authorized.PUT("/transfers/:id", handlers.UpdateTransferHandler(pool))
	authorized.DELETE("/transfers/:id", handlers.DeleteTransferHandler(pool))

	authorized.GET("/balance", handlers.GetBalancesHandler(pool))

	return r
}
