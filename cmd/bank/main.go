package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaibhavi0810/bank-app/internal/adapter/console"
	"github.com/vaibhavi0810/bank-app/internal/adapter/repository/memory"
	"github.com/vaibhavi0810/bank-app/internal/config"
	"github.com/vaibhavi0810/bank-app/internal/usecase/services"
)

func main() {
	// Optional .env for presentation settings; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accounts := memory.NewAccountRepository()
	ledger := services.NewLedgerService(accounts, nil, nil)

	ui := console.New(ledger, cfg, os.Stdin, os.Stdout)
	if err := ui.Run(context.Background()); err != nil {
		log.Fatalf("console: %v", err)
	}
}
