package repo_interfaces

import (
	"context"

	"github.com/vaibhavi0810/bank-app/internal/domain"
)

// AccountRepository is the registry the ledger service depends on. Get and
// List return snapshots; Update runs fn against the live account inside the
// repository's critical section, so a balance update and its log append
// commit as one unit.
type AccountRepository interface {
	Store(ctx context.Context, account *domain.Account) error
	Get(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, id string, fn func(*domain.Account) error) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Account, error)
}
