// Package goals implementa el service de goals y subgoals de un perfil.
//
// Todas las operaciones están acotadas al profile del caller: un goal
// de otro perfil se comporta como inexistente.
package goals

import (
	"context"

	"github.com/google/uuid"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/goals"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

// Deps agrupa las dependencias del service.
type Deps struct {
	Store *repository.Store
}

type Service interface {
	List(ctx context.Context, profileID string) (*dto.ListResponse, error)
	Get(ctx context.Context, profileID, goalID string) (*dto.Goal, error)
	Create(ctx context.Context, profileID string, in dto.Goal) (*dto.Goal, error)
	Update(ctx context.Context, profileID, goalID string, in dto.Goal) (*dto.Goal, error)
	Delete(ctx context.Context, profileID, goalID string) error
}

type service struct {
	deps Deps
}

// NewService crea el service de goals.
func NewService(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) List(ctx context.Context, profileID string) (*dto.ListResponse, error) {
	goals, err := s.deps.Store.Goals.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Goal, 0, len(goals))
	for _, g := range goals {
		subs, err := s.deps.Store.Subgoals.ListByGoal(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, goalDTO(g, subs))
	}

	return &dto.ListResponse{Total: len(out), Data: out}, nil
}

func (s *service) Get(ctx context.Context, profileID, goalID string) (*dto.Goal, error) {
	goal, err := s.ownedGoal(ctx, profileID, goalID)
	if err != nil {
		return nil, err
	}
	subs, err := s.deps.Store.Subgoals.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	out := goalDTO(goal, subs)
	return &out, nil
}

func (s *service) Create(ctx context.Context, profileID string, in dto.Goal) (*dto.Goal, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("goals"),
	)

	goal, err := s.deps.Store.Goals.Create(ctx, repository.Goal{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		EndDate:     in.EndDate,
		Completed:   in.Completed,
	})
	if err != nil {
		return nil, err
	}

	subs := make([]repository.Subgoal, 0, len(in.Subgoals))
	for _, sg := range in.Subgoals {
		created, err := s.deps.Store.Subgoals.Create(ctx, repository.Subgoal{
			ID:        uuid.NewString(),
			GoalID:    goal.ID,
			Name:      sg.Name,
			Completed: sg.Completed,
		})
		if err != nil {
			return nil, err
		}
		subs = append(subs, created)
	}

	log.Info("goal created", logger.GoalID(goal.ID), logger.ProfileID(profileID))

	out := goalDTO(goal, subs)
	return &out, nil
}

// Update reconcilia los subgoals contra el payload: sin ID es alta,
// con ID es update, y los que el payload no menciona se eliminan.
func (s *service) Update(ctx context.Context, profileID, goalID string, in dto.Goal) (*dto.Goal, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("goals"),
	)

	goal, err := s.ownedGoal(ctx, profileID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Name = in.Name
	goal.Description = in.Description
	goal.Category = in.Category
	goal.EndDate = in.EndDate
	goal.Completed = in.Completed

	goal, err = s.deps.Store.Goals.Update(ctx, goal)
	if err != nil {
		return nil, err
	}

	existing, err := s.deps.Store.Subgoals.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(in.Subgoals))

	subs := make([]repository.Subgoal, 0, len(in.Subgoals))
	for _, sg := range in.Subgoals {
		if sg.ID == "" {
			created, err := s.deps.Store.Subgoals.Create(ctx, repository.Subgoal{
				ID:        uuid.NewString(),
				GoalID:    goal.ID,
				Name:      sg.Name,
				Completed: sg.Completed,
			})
			if err != nil {
				return nil, err
			}
			subs = append(subs, created)
			continue
		}

		keep[sg.ID] = true
		updated, err := s.deps.Store.Subgoals.Update(ctx, repository.Subgoal{
			ID:        sg.ID,
			GoalID:    goal.ID,
			Name:      sg.Name,
			Completed: sg.Completed,
		})
		if err != nil {
			if repository.IsNotFound(err) {
				// ID desconocido en el payload: lo tratamos como alta.
				created, cerr := s.deps.Store.Subgoals.Create(ctx, repository.Subgoal{
					ID:        uuid.NewString(),
					GoalID:    goal.ID,
					Name:      sg.Name,
					Completed: sg.Completed,
				})
				if cerr != nil {
					return nil, cerr
				}
				subs = append(subs, created)
				continue
			}
			return nil, err
		}
		subs = append(subs, updated)
	}

	for _, sg := range existing {
		if keep[sg.ID] {
			continue
		}
		if err := s.deps.Store.Subgoals.Delete(ctx, sg.ID); err != nil && !repository.IsNotFound(err) {
			return nil, err
		}
	}

	log.Info("goal updated", logger.GoalID(goal.ID))

	out := goalDTO(goal, subs)
	return &out, nil
}

func (s *service) Delete(ctx context.Context, profileID, goalID string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("goals"),
	)

	if _, err := s.ownedGoal(ctx, profileID, goalID); err != nil {
		return err
	}
	if err := s.deps.Store.Goals.Delete(ctx, goalID); err != nil {
		return err
	}

	log.Info("goal deleted", logger.GoalID(goalID))
	return nil
}

// ownedGoal resuelve el goal y verifica que pertenezca al profile.
func (s *service) ownedGoal(ctx context.Context, profileID, goalID string) (repository.Goal, error) {
	goal, err := s.deps.Store.Goals.GetByID(ctx, goalID)
	if err != nil {
		return repository.Goal{}, err
	}
	if goal.ProfileID != profileID {
		return repository.Goal{}, repository.ErrNotFound
	}
	return goal, nil
}

func goalDTO(g repository.Goal, subs []repository.Subgoal) dto.Goal {
	out := dto.Goal{
		ID:          g.ID,
		ProfileID:   g.ProfileID,
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		EndDate:     g.EndDate,
		Completed:   g.Completed,
		Subgoals:    make([]dto.Subgoal, 0, len(subs)),
	}
	for _, sg := range subs {
		out.Subgoals = append(out.Subgoals, dto.Subgoal{
			ID:        sg.ID,
			Name:      sg.Name,
			Completed: sg.Completed,
		})
	}
	return out
}
