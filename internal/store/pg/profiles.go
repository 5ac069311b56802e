package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
)

type profileRepo struct {
	pool *pgxpool.Pool
}

const profileColumns = `id, account_id, first_name, last_name, created_at, updated_at`

func (r *profileRepo) Create(ctx context.Context, p repository.Profile) (repository.Profile, error) {
	const query = `
		INSERT INTO profile (id, account_id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + profileColumns
	row := r.pool.QueryRow(ctx, query, p.ID, p.AccountID, p.FirstName, p.LastName)
	out, err := scanProfile(row)
	return out, mapError(err)
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (repository.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE id = $1`
	out, err := scanProfile(r.pool.QueryRow(ctx, query, id))
	return out, mapError(err)
}

func (r *profileRepo) GetByAccountID(ctx context.Context, accountID string) (repository.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE account_id = $1`
	out, err := scanProfile(r.pool.QueryRow(ctx, query, accountID))
	return out, mapError(err)
}

func (r *profileRepo) Update(ctx context.Context, p repository.Profile) (repository.Profile, error) {
	const query = `
		UPDATE profile
		SET first_name = $2, last_name = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns
	row := r.pool.QueryRow(ctx, query, p.ID, p.FirstName, p.LastName)
	out, err := scanProfile(row)
	return out, mapError(err)
}

func scanProfile(row rowScanner) (repository.Profile, error) {
	var p repository.Profile
	err := row.Scan(&p.ID, &p.AccountID, &p.FirstName, &p.LastName, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
