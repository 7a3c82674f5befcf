package mybank

import (
	"context"
	"errors"
	"fmt"
)

type Service interface {
	Register(ctx context.Context, req registerRequest) (*Account, error)
	Login(ctx context.Context, req loginRequest) (*Account, error)
	Logout(ctx context.Context) error
}

// Events is notified after an account has been created.
type Events interface {
	AccountCreated(id string, name string, email string)
}

type service struct {
	accounts Repository
	events   Events
}

func NewService(accounts Repository, events Events) Service {
	return &service{accounts: accounts, events: events}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register turns a registration request into a persisted account.
// Uniqueness is enforced twice: an optimistic FindByEmail pre-check for
// fast feedback, and the store's own constraint for the concurrent
// insert the pre-check cannot close.
func (svc *service) Register(ctx context.Context, req registerRequest) (*Account, error) {
	req, err := validateRegistration(req)
	if err != nil {
		return nil, err
	}

	if _, err := svc.accounts.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("error finding account: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	acc := &Account{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := svc.accounts.Store(ctx, acc); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error saving account: %w", err)
	}

	if svc.events != nil {
		svc.events.AccountCreated(string(acc.ID), acc.Name, acc.Email)
	}

	return acc, nil
}

// Login resolves credentials to an account. A missing account and a
// wrong password return the identical error so callers cannot probe
// which emails are registered.
func (svc *service) Login(ctx context.Context, req loginRequest) (*Account, error) {
	req, err := validateLogin(req)
	if err != nil {
		return nil, err
	}

	acc, err := svc.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding account: %w", err)
	}

	if !hashMatchesPassword(acc.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return acc, nil
}

// Logout is a no-op: authentication state lives on the client, there is
// no server-side session to invalidate.
func (svc *service) Logout(ctx context.Context) error {
	return nil
}
