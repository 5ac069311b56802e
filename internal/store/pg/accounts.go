package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
)

type accountRepo struct {
	pool *pgxpool.Pool
}

const accountColumns = `id, username, email, salt, hash, created_at, updated_at`

func (r *accountRepo) Create(ctx context.Context, a repository.Account) (repository.Account, error) {
	const query = `
		INSERT INTO account (id, username, email, salt, hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + accountColumns
	row := r.pool.QueryRow(ctx, query, a.ID, a.Username, a.Email, a.Salt, a.Hash)
	out, err := scanAccount(row)
	return out, mapError(err)
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (repository.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM account WHERE id = $1`
	out, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	return out, mapError(err)
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (repository.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM account WHERE username = $1`
	out, err := scanAccount(r.pool.QueryRow(ctx, query, username))
	return out, mapError(err)
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (repository.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM account WHERE email = $1`
	out, err := scanAccount(r.pool.QueryRow(ctx, query, email))
	return out, mapError(err)
}

func (r *accountRepo) Update(ctx context.Context, a repository.Account) (repository.Account, error) {
	const query = `
		UPDATE account
		SET username = $2, email = $3, salt = $4, hash = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + accountColumns
	row := r.pool.QueryRow(ctx, query, a.ID, a.Username, a.Email, a.Salt, a.Hash)
	out, err := scanAccount(row)
	return out, mapError(err)
}

func (r *accountRepo) Delete(ctx context.Context, id string) error {
	// El profile y sus goals caen por ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM account WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (repository.Account, error) {
	var a repository.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.Salt, &a.Hash, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
