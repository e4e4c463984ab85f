package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

// Account is a single balance-holding entity with an append-only
// transaction history. The balance always equals the opening balance plus
// the signed sum of the history, and never goes negative. AccountType is an
// uninterpreted label; it has no behavioral effect.
type Account struct {
	ID           string
	HolderName   string
	AccountType  AccountType
	Balance      decimal.Decimal
	CreatedAt    time.Time
	Transactions []Transaction

	now func() time.Time
}

// NewAccount builds an account with an empty transaction history. The
// opening balance is not recorded as a transaction. The clock is used for
// the creation date and every subsequent transaction timestamp.
func NewAccount(id, holderName string, openingBalance decimal.Decimal, accountType AccountType, now func() time.Time) (*Account, error) {
	if now == nil {
		now = time.Now
	}
	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidAmount)
	}

	return &Account{
		ID:          id,
		HolderName:  holderName,
		AccountType: accountType,
		Balance:     openingBalance,
		CreatedAt:   now(),
		now:         now,
	}, nil
}

// Deposit adds amount to the balance and appends a Deposit transaction.
// On failure nothing is mutated.
func (a *Account) Deposit(amount decimal.Decimal) (string, error) {
	if amount.Sign() <= 0 {
		return "", fmt.Errorf("%w: deposit amount must be positive", ErrInvalidAmount)
	}

	a.Balance = a.Balance.Add(amount)
	a.appendTransaction(TransactionKindDeposit, amount)
	return fmt.Sprintf("Deposited $%s. New balance: $%s", amount.StringFixed(2), a.Balance.StringFixed(2)), nil
}

// Withdraw subtracts amount from the balance and appends a Withdrawal
// transaction with a negated amount. On failure nothing is mutated.
func (a *Account) Withdraw(amount decimal.Decimal) (string, error) {
	if amount.Sign() <= 0 {
		return "", fmt.Errorf("%w: withdrawal amount must be positive", ErrInvalidAmount)
	}
	if amount.GreaterThan(a.Balance) {
		return "", ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	a.appendTransaction(TransactionKindWithdrawal, amount.Neg())
	return fmt.Sprintf("Withdrew $%s. New balance: $%s", amount.StringFixed(2), a.Balance.StringFixed(2)), nil
}

func (a *Account) CurrentBalance() decimal.Decimal {
	return a.Balance
}

// Details renders the account snapshot as a display block, one field per
// line, balance at two decimal places.
func (a *Account) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account Number: %s\n", a.ID)
	fmt.Fprintf(&b, "Account Holder: %s\n", a.HolderName)
	fmt.Fprintf(&b, "Account Type: %s\n", a.AccountType)
	fmt.Fprintf(&b, "Balance: $%s\n", a.Balance.StringFixed(2))
	fmt.Fprintf(&b, "Creation Date: %s\n", a.CreatedAt.Format("2006-01-02"))
	return b.String()
}

// FormatTransactionHistory renders the history in chronological order,
// amounts right-aligned to two decimal places.
func (a *Account) FormatTransactionHistory() string {
	if len(a.Transactions) == 0 {
		return "No transactions yet."
	}

	divider := strings.Repeat("-", 30)
	var b strings.Builder
	b.WriteString(divider + "\nTransaction History:\n" + divider + "\n")
	for _, txn := range a.Transactions {
		fmt.Fprintf(&b, "%s - %-10s: $%8s\n",
			txn.Timestamp.Format("2006-01-02 15:04:05"),
			txn.Kind,
			txn.Amount.StringFixed(2),
		)
	}
	b.WriteString(divider)
	return b.String()
}

// Clone returns a deep snapshot safe to hand outside the registry's lock.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Transactions = make([]Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return &cp
}

func (a *Account) appendTransaction(kind TransactionKind, amount decimal.Decimal) {
	a.Transactions = append(a.Transactions, Transaction{
		Timestamp: a.now(),
		Kind:      kind,
		Amount:    amount,
	})
}
