package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaibhavi0810/bank-app/internal/domain"
)

// AccountRepository keeps every account in process memory. A single mutex
// serializes all reads and writes; listing follows insertion order.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	order    []string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Store(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}

	r.accounts[account.ID] = account
	r.order = append(r.order, account.ID)
	return nil
}

// Get returns a deep copy; callers cannot mutate registry state through it.
func (r *AccountRepository) Get(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account.Clone(), nil
}

// Update runs fn against the live account while the lock is held. If fn
// returns an error the account is left exactly as fn left it, so fn must
// mutate nothing on failure.
func (r *AccountRepository) Update(_ context.Context, id string, fn func(*domain.Account) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	return fn(account)
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}

	delete(r.accounts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.accounts[id].Clone())
	}
	return out, nil
}
