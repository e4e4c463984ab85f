package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vaibhavi0810/bank-app/internal/adapter/console/models"
	"github.com/vaibhavi0810/bank-app/internal/adapter/repository/repo_interfaces"
	"github.com/vaibhavi0810/bank-app/internal/commons"
	"github.com/vaibhavi0810/bank-app/internal/domain"
	"github.com/vaibhavi0810/bank-app/internal/logger"
)

// IDGenerator yields a fresh unique account id. Kept as a capability so
// tests can inject deterministic ids.
type IDGenerator func() string

// LedgerService owns the account registry and every operation over it.
// Validation failures never propagate out of CreateAccount; they are
// converted into the returned Message.
type LedgerService struct {
	accounts repo_interfaces.AccountRepository
	ids      IDGenerator
	now      func() time.Time
}

func NewLedgerService(accounts repo_interfaces.AccountRepository, ids IDGenerator, now func() time.Time) *LedgerService {
	if ids == nil {
		ids = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}

	return &LedgerService{
		accounts: accounts,
		ids:      ids,
		now:      now,
	}
}

func (s *LedgerService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error) {
	logger.Info("ledger service create account request", logger.Fields{
		"holderName":  req.HolderName,
		"accountType": req.AccountType,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service create account validation failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse](fmt.Sprintf("Account creation failed: %v", err)), err
	}

	openingBalance := decimal.Zero
	if raw := strings.TrimSpace(req.InitialBalance); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			err = fmt.Errorf("%w: initial balance must be a number", domain.ErrInvalidAmount)
			logger.Error("ledger service create account parse balance failed", err, nil)
			return commons.ErrorResponse[models.CreateAccountResponse](fmt.Sprintf("Account creation failed: %v", err)), err
		}
		openingBalance = parsed
	}

	accountType := domain.AccountType(strings.TrimSpace(req.AccountType))
	if accountType == "" {
		accountType = domain.AccountTypeSavings
	}

	account, err := domain.NewAccount(s.ids(), strings.TrimSpace(req.HolderName), openingBalance, accountType, s.now)
	if err != nil {
		logger.Error("ledger service create account failed", err, logger.Fields{
			"holderName": req.HolderName,
		})
		return commons.ErrorResponse[models.CreateAccountResponse](fmt.Sprintf("Account creation failed: %v", err)), err
	}

	if err := s.accounts.Store(ctx, account); err != nil {
		logger.Error("ledger service store account failed", err, logger.Fields{
			"accountId": account.ID,
		})
		return commons.ErrorResponse[models.CreateAccountResponse](fmt.Sprintf("Account creation failed: %v", err)), err
	}

	response := models.CreateAccountResponse{
		AccountID:   account.ID,
		HolderName:  account.HolderName,
		AccountType: string(account.AccountType),
		Balance:     account.Balance.StringFixed(2),
		CreatedAt:   account.CreatedAt.Format("2006-01-02"),
	}

	logger.Info("ledger service create account success", logger.Fields{
		"accountId":  response.AccountID,
		"holderName": response.HolderName,
	})

	return commons.SuccessResponse(fmt.Sprintf("Account created successfully. Account number: %s", account.ID), response), nil
}

// GetAccount returns a snapshot of the account, or domain.ErrAccountNotFound.
// Absence is an expected outcome; no placeholder is ever constructed.
func (s *LedgerService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.Get(ctx, strings.TrimSpace(accountID))
}

func (s *LedgerService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service deposit request", logger.Fields{
		"accountId": req.AccountID,
		"amount":    req.Amount,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse](fmt.Sprintf("Deposit failed: %v", err)), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Error("ledger service deposit parse amount failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse](fmt.Sprintf("Deposit failed: %v", err)), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	var message string
	var balance decimal.Decimal
	err = s.accounts.Update(ctx, accountID, func(account *domain.Account) error {
		confirmation, depositErr := account.Deposit(amount)
		if depositErr != nil {
			return depositErr
		}
		message = confirmation
		balance = account.Balance
		return nil
	})
	if err != nil {
		logger.Error("ledger service deposit failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found."), err
		}
		return commons.ErrorResponse[models.TransactionResponse](fmt.Sprintf("Deposit failed: %v", err)), err
	}

	response := models.TransactionResponse{
		AccountID: accountID,
		Kind:      string(domain.TransactionKindDeposit),
		Amount:    amount.StringFixed(2),
		Balance:   balance.StringFixed(2),
	}

	logger.Info("ledger service deposit success", logger.Fields{
		"accountId": accountID,
		"amount":    response.Amount,
		"balance":   response.Balance,
	})

	return commons.SuccessResponse(message, response), nil
}

func (s *LedgerService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service withdraw request", logger.Fields{
		"accountId": req.AccountID,
		"amount":    req.Amount,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse](fmt.Sprintf("Withdrawal failed: %v", err)), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Error("ledger service withdraw parse amount failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse](fmt.Sprintf("Withdrawal failed: %v", err)), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	var message string
	var balance decimal.Decimal
	err = s.accounts.Update(ctx, accountID, func(account *domain.Account) error {
		confirmation, withdrawErr := account.Withdraw(amount)
		if withdrawErr != nil {
			return withdrawErr
		}
		message = confirmation
		balance = account.Balance
		return nil
	})
	if err != nil {
		logger.Error("ledger service withdraw failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found."), err
		}
		return commons.ErrorResponse[models.TransactionResponse](fmt.Sprintf("Withdrawal failed: %v", err)), err
	}

	response := models.TransactionResponse{
		AccountID: accountID,
		Kind:      string(domain.TransactionKindWithdrawal),
		Amount:    amount.StringFixed(2),
		Balance:   balance.StringFixed(2),
	}

	logger.Info("ledger service withdraw success", logger.Fields{
		"accountId": accountID,
		"amount":    response.Amount,
		"balance":   response.Balance,
	})

	return commons.SuccessResponse(message, response), nil
}

func (s *LedgerService) CheckBalance(ctx context.Context, accountID string) (commons.Response[models.BalanceResponse], error) {
	account, err := s.accounts.Get(ctx, strings.TrimSpace(accountID))
	if err != nil {
		logger.Error("ledger service check balance failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.BalanceResponse]("Account not found."), err
	}

	response := models.BalanceResponse{
		AccountID: account.ID,
		Balance:   account.Balance.StringFixed(2),
	}
	return commons.SuccessResponse(fmt.Sprintf("Current balance: $%s", response.Balance), response), nil
}

func (s *LedgerService) AccountDetails(ctx context.Context, accountID string) (commons.Response[models.AccountDetailsResponse], error) {
	account, err := s.accounts.Get(ctx, strings.TrimSpace(accountID))
	if err != nil {
		logger.Error("ledger service account details failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountDetailsResponse]("Account not found."), err
	}

	response := models.AccountDetailsResponse{
		AccountID:   account.ID,
		HolderName:  account.HolderName,
		AccountType: string(account.AccountType),
		Balance:     account.Balance.StringFixed(2),
		CreatedAt:   account.CreatedAt.Format("2006-01-02"),
	}
	return commons.SuccessResponse(account.Details(), response), nil
}

func (s *LedgerService) TransactionHistory(ctx context.Context, accountID string) (commons.Response[models.TransactionHistoryResponse], error) {
	account, err := s.accounts.Get(ctx, strings.TrimSpace(accountID))
	if err != nil {
		logger.Error("ledger service transaction history failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.TransactionHistoryResponse]("Account not found."), err
	}

	entries := make([]models.TransactionEntry, 0, len(account.Transactions))
	for _, txn := range account.Transactions {
		entries = append(entries, models.TransactionEntry{
			Timestamp: txn.Timestamp.Format("2006-01-02 15:04:05"),
			Kind:      string(txn.Kind),
			Amount:    txn.Amount.StringFixed(2),
		})
	}

	response := models.TransactionHistoryResponse{
		AccountID:    account.ID,
		Transactions: entries,
	}
	return commons.SuccessResponse(account.FormatTransactionHistory(), response), nil
}

func (s *LedgerService) ListAccounts(ctx context.Context) (commons.Response[models.ListAccountsResponse], error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		logger.Error("ledger service list accounts failed", err, nil)
		return commons.ErrorResponse[models.ListAccountsResponse]("Unable to list accounts right now"), err
	}

	if len(accounts) == 0 {
		return commons.SuccessResponse("No accounts in the system.", models.ListAccountsResponse{}), nil
	}

	divider := strings.Repeat("-", 30)
	var b strings.Builder
	b.WriteString(divider + "\nList of All Accounts:\n" + divider + "\n")

	details := make([]models.AccountDetailsResponse, 0, len(accounts))
	for _, account := range accounts {
		b.WriteString(account.Details() + divider + "\n")
		details = append(details, models.AccountDetailsResponse{
			AccountID:   account.ID,
			HolderName:  account.HolderName,
			AccountType: string(account.AccountType),
			Balance:     account.Balance.StringFixed(2),
			CreatedAt:   account.CreatedAt.Format("2006-01-02"),
		})
	}

	return commons.SuccessResponse(b.String(), models.ListAccountsResponse{Accounts: details}), nil
}

// DeleteAccount is idempotent to call twice: the second call reports not
// found. Absence is returned as a message, never as a propagated fault.
func (s *LedgerService) DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.DeleteAccountResponse], error) {
	accountID = strings.TrimSpace(accountID)
	logger.Info("ledger service delete account request", logger.Fields{
		"accountId": accountID,
	})

	if err := s.accounts.Delete(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.DeleteAccountResponse](fmt.Sprintf("Account %s not found.", accountID)), nil
		}
		logger.Error("ledger service delete account failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.DeleteAccountResponse]("Unable to delete account right now"), err
	}

	logger.Info("ledger service delete account success", logger.Fields{
		"accountId": accountID,
	})

	response := models.DeleteAccountResponse{AccountID: accountID}
	return commons.SuccessResponse(fmt.Sprintf("Account %s deleted successfully.", accountID), response), nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount must be a number", domain.ErrInvalidAmount)
	}
	return amount, nil
}
