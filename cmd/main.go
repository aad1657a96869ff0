package main

import (
	"context"
	"fmt"
	"os"

	"github.com/camilaferreira/ledger-api/internal/config"
	"github.com/camilaferreira/ledger-api/internal/database"
	"github.com/camilaferreira/ledger-api/internal/routes"
	"github.com/camilaferreira/ledger-api/utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ScheduleLedgerStats logs daily row counts, a cheap end-of-day sanity view
// of the ledger.
func ScheduleLedgerStats(pool *pgxpool.Pool, log *logrus.Logger) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		var transactions, transfers int
		err := pool.QueryRow(context.Background(),
			`SELECT (SELECT COUNT(*) FROM transactions), (SELECT COUNT(*) FROM transfers)`).
			Scan(&transactions, &transfers)
		if err != nil {
			log.Errorf("ledger stats query failed: %v", err)
			return
		}
		log.Infof("ledger stats: %d transactions, %d transfers", transactions, transfers)
	})
	if err != nil {
		log.Fatalf("could not schedule ledger stats: %v", err)
	}
	c.Start()
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Warnf("no .env file loaded: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatalf("could not load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	pool, err := database.Connect(cfg.DBConn)
	if err != nil {
		logger.Fatalf("could not connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatalf("could not ping database: %v", err)
	}

	if os.Getenv("GENERATE_TEST_DATA") == "true" {
		logger.Info("populating database with generated test data")
		utils.GenerateTestData(pool, 5, 3, 10)
	}

	ScheduleLedgerStats(pool, logger)

	r := routes.SetupRouter(pool, cfg.JWTSecret)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
