package mybank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	acc := &Account{Name: "Bob", Email: "bob@example.com", PasswordHash: "hash"}
	assert.NoError(t, repo.Store(ctx, acc))
	assert.True(t, isValidID(string(acc.ID)))
	assert.False(t, acc.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "bob@example.com")
	assert.NoError(t, err)
	assert.Equal(t, acc.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	err = repo.Store(ctx, &Account{Name: "Other", Email: "bob@example.com", PasswordHash: "hash2"})
	assert.Equal(t, ErrDuplicateEmail, err)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.Equal(t, ErrNotFound, err)
}
