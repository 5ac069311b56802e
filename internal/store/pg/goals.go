package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
)

type goalRepo struct {
	pool *pgxpool.Pool
}

const goalColumns = `id, profile_id, name, description, category, end_date, completed, created_at, updated_at`

func (r *goalRepo) Create(ctx context.Context, g repository.Goal) (repository.Goal, error) {
	const query = `
		INSERT INTO goal (id, profile_id, name, description, category, end_date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + goalColumns
	row := r.pool.QueryRow(ctx, query, g.ID, g.ProfileID, g.Name, g.Description, g.Category, g.EndDate, g.Completed)
	out, err := scanGoal(row)
	return out, mapError(err)
}

func (r *goalRepo) GetByID(ctx context.Context, id string) (repository.Goal, error) {
	const query = `SELECT ` + goalColumns + ` FROM goal WHERE id = $1`
	out, err := scanGoal(r.pool.QueryRow(ctx, query, id))
	return out, mapError(err)
}

func (r *goalRepo) ListByProfile(ctx context.Context, profileID string) ([]repository.Goal, error) {
	const query = `SELECT ` + goalColumns + ` FROM goal WHERE profile_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var goals []repository.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *goalRepo) Update(ctx context.Context, g repository.Goal) (repository.Goal, error) {
	const query = `
		UPDATE goal
		SET name = $2, description = $3, category = $4, end_date = $5, completed = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + goalColumns
	row := r.pool.QueryRow(ctx, query, g.ID, g.Name, g.Description, g.Category, g.EndDate, g.Completed)
	out, err := scanGoal(row)
	return out, mapError(err)
}

func (r *goalRepo) Delete(ctx context.Context, id string) error {
	// Subgoals caen por ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM goal WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanGoal(row rowScanner) (repository.Goal, error) {
	var g repository.Goal
	err := row.Scan(&g.ID, &g.ProfileID, &g.Name, &g.Description, &g.Category,
		&g.EndDate, &g.Completed, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

type subgoalRepo struct {
	pool *pgxpool.Pool
}

const subgoalColumns = `id, goal_id, name, completed, created_at, updated_at`

func (r *subgoalRepo) Create(ctx context.Context, s repository.Subgoal) (repository.Subgoal, error) {
	const query = `
		INSERT INTO subgoal (id, goal_id, name, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + subgoalColumns
	row := r.pool.QueryRow(ctx, query, s.ID, s.GoalID, s.Name, s.Completed)
	out, err := scanSubgoal(row)
	return out, mapError(err)
}

func (r *subgoalRepo) GetByID(ctx context.Context, id string) (repository.Subgoal, error) {
	const query = `SELECT ` + subgoalColumns + ` FROM subgoal WHERE id = $1`
	out, err := scanSubgoal(r.pool.QueryRow(ctx, query, id))
	return out, mapError(err)
}

func (r *subgoalRepo) ListByGoal(ctx context.Context, goalID string) ([]repository.Subgoal, error) {
	const query = `SELECT ` + subgoalColumns + ` FROM subgoal WHERE goal_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var subgoals []repository.Subgoal
	for rows.Next() {
		s, err := scanSubgoal(rows)
		if err != nil {
			return nil, err
		}
		subgoals = append(subgoals, s)
	}
	return subgoals, rows.Err()
}

func (r *subgoalRepo) Update(ctx context.Context, s repository.Subgoal) (repository.Subgoal, error) {
	const query = `
		UPDATE subgoal
		SET name = $2, completed = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + subgoalColumns
	row := r.pool.QueryRow(ctx, query, s.ID, s.Name, s.Completed)
	out, err := scanSubgoal(row)
	return out, mapError(err)
}

func (r *subgoalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subgoal WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanSubgoal(row rowScanner) (repository.Subgoal, error) {
	var s repository.Subgoal
	err := row.Scan(&s.ID, &s.GoalID, &s.Name, &s.Completed, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
