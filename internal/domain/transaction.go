package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "Deposit"
	TransactionKindWithdrawal TransactionKind = "Withdrawal"
)

// Transaction is a single entry in an account's append-only history.
// Amount carries the sign: positive for deposits, negative for withdrawals.
type Transaction struct {
	Timestamp time.Time
	Kind      TransactionKind
	Amount    decimal.Decimal
}
