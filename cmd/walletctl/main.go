package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tarapay/wallet-ledger/internal/platform/config"
	"github.com/tarapay/wallet-ledger/internal/platform/database"
	"github.com/tarapay/wallet-ledger/internal/platform/logger"
	"github.com/tarapay/wallet-ledger/internal/wallet_service/app"
	"github.com/tarapay/wallet-ledger/internal/wallet_service/domain"
	"github.com/tarapay/wallet-ledger/internal/wallet_service/repository/postgres"
)

const usage = `Usage:
  walletctl create-account -user <uuid>
  walletctl deposit        -user <uuid> -amount <decimal>
  walletctl balance        -user <uuid>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	userFlag := flags.String("user", "", "user id (UUID)")
	amountFlag := flags.String("amount", "", "deposit amount (decimal, > 0)")
	if err := flags.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -user %q: %v\n", *userFlag, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	appLogger := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dbPool, err := database.NewDBPool(ctx, cfg.PostgresDSN, cfg.DBMaxConns)
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	service := app.NewLedgerService(
		postgres.NewPgAccountRepository(),
		postgres.NewPgOutboxRepository(),
		dbPool,
		appLogger,
	)

	var result any
	switch command {
	case "create-account":
		result, err = service.CreateAccount(ctx, userID)
	case "deposit":
		var amount decimal.Decimal
		amount, err = decimal.NewFromString(*amountFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -amount %q: %v\n", *amountFlag, err)
			os.Exit(2)
		}
		result, err = service.Deposit(ctx, userID, amount)
	case "balance":
		result, err = service.GetBalance(ctx, userID)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", command, err)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			fmt.Fprintln(os.Stderr, "the operation had no effect and may be retried")
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		appLogger.Error("Failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
