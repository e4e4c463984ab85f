package models

import (
	"errors"
	"strings"
)

// Request models carry raw field input from the presentation layer.
// Validate covers presence only; whether a value is numeric is decided by
// the ledger service, which owns amount parsing.

type CreateAccountRequest struct {
	HolderName     string `json:"holderName"`
	InitialBalance string `json:"initialBalance,omitempty"`
	AccountType    string `json:"accountType,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	if strings.TrimSpace(r.HolderName) == "" {
		return errors.New("holderName is required")
	}
	return nil
}

type DepositRequest struct {
	AccountID string `json:"accountId"`
	Amount    string `json:"amount"`
}

func (r DepositRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type WithdrawRequest struct {
	AccountID string `json:"accountId"`
	Amount    string `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
