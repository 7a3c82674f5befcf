package mybank

import (
	"context"
	"sync"
	"time"
)

// accountRepository is an in-memory store keyed by normalized email.
// Check-and-insert happens under one lock, which is what gives this
// backend its uniqueness guarantee.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewAccountRepository() Repository {
	return &accountRepository{accounts: map[string]*Account{}}
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if acc, ok := repo.accounts[email]; ok {
		found := *acc
		return &found, nil
	}
	return nil, ErrNotFound
}

func (repo *accountRepository) Store(ctx context.Context, acc *Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.accounts[acc.Email]; ok {
		return ErrDuplicateEmail
	}

	acc.ID = NewID()
	acc.CreatedAt = time.Now().UTC()

	stored := *acc
	repo.accounts[acc.Email] = &stored
	return nil
}
