package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vaibhavi0810/bank-app/internal/adapter/repository/memory"
	"github.com/vaibhavi0810/bank-app/internal/domain"
)

func mustAccount(t *testing.T, id, holder string) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(id, holder, decimal.NewFromInt(100), domain.AccountTypeSavings, func() time.Time {
		return time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	return account
}

func TestStoreAndGetReturnsSnapshot(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	if err := repo.Store(ctx, mustAccount(t, "acct-1", "Alice")); err != nil {
		t.Fatalf("store: %v", err)
	}

	snapshot, err := repo.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	// Mutating the snapshot must not leak into the registry.
	snapshot.Balance = decimal.NewFromInt(0)
	snapshot.Transactions = append(snapshot.Transactions, domain.Transaction{})

	fresh, err := repo.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if !fresh.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("registry state mutated through snapshot: %s", fresh.Balance)
	}
	if len(fresh.Transactions) != 0 {
		t.Fatalf("registry history mutated through snapshot")
	}
}

func TestStoreRejectsDuplicateID(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	if err := repo.Store(ctx, mustAccount(t, "acct-1", "Alice")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := repo.Store(ctx, mustAccount(t, "acct-1", "Bob")); err == nil {
		t.Fatal("expected error storing duplicate id")
	}
}

func TestGetMissingAccount(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUpdateMutatesUnderLock(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	if err := repo.Store(ctx, mustAccount(t, "acct-1", "Alice")); err != nil {
		t.Fatalf("store: %v", err)
	}

	err := repo.Update(ctx, "acct-1", func(account *domain.Account) error {
		_, depositErr := account.Deposit(decimal.NewFromInt(50))
		return depositErr
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	snapshot, err := repo.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !snapshot.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected balance 150, got %s", snapshot.Balance)
	}
	if len(snapshot.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(snapshot.Transactions))
	}
}

func TestUpdateMissingAccount(t *testing.T) {
	repo := memory.NewAccountRepository()

	err := repo.Update(context.Background(), "missing", func(*domain.Account) error { return nil })
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotentlyReported(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	if err := repo.Store(ctx, mustAccount(t, "acct-1", "Alice")); err != nil {
		t.Fatalf("store: %v", err)
	}

	if err := repo.Delete(ctx, "acct-1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, "acct-1"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("second delete: expected ErrAccountNotFound, got %v", err)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	for _, id := range []string{"acct-3", "acct-1", "acct-2"} {
		if err := repo.Store(ctx, mustAccount(t, id, "Holder "+id)); err != nil {
			t.Fatalf("store %s: %v", id, err)
		}
	}

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(accounts))
	}
	for i, want := range []string{"acct-3", "acct-1", "acct-2"} {
		if accounts[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, accounts[i].ID)
		}
	}
}
