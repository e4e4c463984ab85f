package service_interfaces

import (
	"context"

	"github.com/vaibhavi0810/bank-app/internal/adapter/console/models"
	"github.com/vaibhavi0810/bank-app/internal/commons"
	"github.com/vaibhavi0810/bank-app/internal/domain"
)

// LedgerService is the boundary the presentation layer calls. Every
// response Message is a complete display string.
type LedgerService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error)
	CheckBalance(ctx context.Context, accountID string) (commons.Response[models.BalanceResponse], error)
	AccountDetails(ctx context.Context, accountID string) (commons.Response[models.AccountDetailsResponse], error)
	TransactionHistory(ctx context.Context, accountID string) (commons.Response[models.TransactionHistoryResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[models.ListAccountsResponse], error)
	DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.DeleteAccountResponse], error)
}
