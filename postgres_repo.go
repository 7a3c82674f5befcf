package mybank

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the postgres error code raised when an insert
// breaks the unique index on accounts.email.
const uniqueViolation = "23505"

// PostgresAccountRepository implements Repository using PostgreSQL.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

func (r *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM accounts WHERE email = $1`

	acc := &Account{}
	err := r.pool.QueryRow(ctx, query, email).Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return acc, nil
}

func (r *PostgresAccountRepository) Store(ctx context.Context, acc *Account) error {
	query := `INSERT INTO accounts (id, name, email, password_hash)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`

	id := NewID()
	err := r.pool.QueryRow(ctx, query, string(id), acc.Name, acc.Email, acc.PasswordHash).Scan(&acc.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}

	acc.ID = id
	return nil
}

var _ Repository = (*PostgresAccountRepository)(nil)
