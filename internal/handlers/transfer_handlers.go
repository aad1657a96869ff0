package handlers

import (
	"net/http"
	"strconv"

	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/camilaferreira/ledger-api/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateTransferHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transfer models.Transfer
		if err := c.ShouldBindJSON(&transfer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Entrada inválida"})
			return
		}

		// the owner always comes from the auth context, never from the body
		if err := database.CreateTransfer(pool, userID(c), &transfer); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, transfer)
	}
}

func GetTransfersHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transfers, err := database.GetTransfersByUserID(pool, userID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transfers)
	}
}

func GetTransferHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
			return
		}

		transfer, err := database.GetTransferByID(pool, userID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transfer)
	}
}

func UpdateTransferHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
			return
		}

		var transfer models.Transfer
		if err := c.ShouldBindJSON(&transfer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Entrada inválida"})
			return
		}

		if err := database.UpdateTransfer(pool, userID(c), id, &transfer); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transfer)
	}
}

func DeleteTransferHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
			return
		}

		if err := database.DeleteTransfer(pool, userID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
