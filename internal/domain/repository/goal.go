package repository

import (
	"context"
	"time"
)

// Goal es un objetivo de un perfil. Los subgoals cuelgan de él.
type Goal struct {
	ID          string
	ProfileID   string
	Name        string
	Description string
	Category    string
	EndDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subgoal es un paso dentro de un goal.
type Subgoal struct {
	ID        string
	GoalID    string
	Name      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GoalRepository interface {
	Create(ctx context.Context, g Goal) (Goal, error)
	GetByID(ctx context.Context, id string) (Goal, error)
	ListByProfile(ctx context.Context, profileID string) ([]Goal, error)
	Update(ctx context.Context, g Goal) (Goal, error)
	// Delete elimina el goal; sus subgoals caen en cascada.
	Delete(ctx context.Context, id string) error
}

type SubgoalRepository interface {
	Create(ctx context.Context, s Subgoal) (Subgoal, error)
	GetByID(ctx context.Context, id string) (Subgoal, error)
	ListByGoal(ctx context.Context, goalID string) ([]Subgoal, error)
	Update(ctx context.Context, s Subgoal) (Subgoal, error)
	Delete(ctx context.Context, id string) error
}

// Store agrupa los repositorios que un backend concreto debe proveer.
type Store struct {
	Accounts AccountRepository
	Profiles ProfileRepository
	Goals    GoalRepository
	Subgoals SubgoalRepository
}
