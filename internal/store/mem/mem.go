// Package mem implementa los repositorios de dominio en memoria.
// Su única ambición es servir para desarrollo local y tests de handlers;
// replica la semántica de pg (unicidad, cascada, ErrNotFound/ErrConflict).
package mem

import (
	"context"
	"sync"
	"time"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
)

// New arma un Store en memoria vacío.
func New() *repository.Store {
	db := &memDB{
		accounts: map[string]repository.Account{},
		profiles: map[string]repository.Profile{},
		goals:    map[string]repository.Goal{},
		subgoals: map[string]repository.Subgoal{},
	}
	return &repository.Store{
		Accounts: &accountRepo{db: db},
		Profiles: &profileRepo{db: db},
		Goals:    &goalRepo{db: db},
		Subgoals: &subgoalRepo{db: db},
	}
}

// memDB comparte el lock entre repos para que la cascada sea consistente.
type memDB struct {
	mu       sync.RWMutex
	accounts map[string]repository.Account
	profiles map[string]repository.Profile
	goals    map[string]repository.Goal
	subgoals map[string]repository.Subgoal
}

type accountRepo struct{ db *memDB }

func (r *accountRepo) Create(_ context.Context, a repository.Account) (repository.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.accounts {
		if existing.Username == a.Username || existing.Email == a.Email {
			return repository.Account{}, repository.ErrConflict
		}
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	r.db.accounts[a.ID] = a
	return a, nil
}

func (r *accountRepo) GetByID(_ context.Context, id string) (repository.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	a, ok := r.db.accounts[id]
	if !ok {
		return repository.Account{}, repository.ErrNotFound
	}
	return a, nil
}

func (r *accountRepo) GetByUsername(_ context.Context, username string) (repository.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, a := range r.db.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return repository.Account{}, repository.ErrNotFound
}

func (r *accountRepo) GetByEmail(_ context.Context, email string) (repository.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, a := range r.db.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return repository.Account{}, repository.ErrNotFound
}

func (r *accountRepo) Update(_ context.Context, a repository.Account) (repository.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.accounts[a.ID]
	if !ok {
		return repository.Account{}, repository.ErrNotFound
	}
	for id, other := range r.db.accounts {
		if id != a.ID && (other.Username == a.Username || other.Email == a.Email) {
			return repository.Account{}, repository.ErrConflict
		}
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	r.db.accounts[a.ID] = a
	return a, nil
}

func (r *accountRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.accounts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.accounts, id)
	// Cascada: profile -> goals -> subgoals.
	for pid, p := range r.db.profiles {
		if p.AccountID != id {
			continue
		}
		delete(r.db.profiles, pid)
		for gid, g := range r.db.goals {
			if g.ProfileID != pid {
				continue
			}
			delete(r.db.goals, gid)
			for sid, s := range r.db.subgoals {
				if s.GoalID == gid {
					delete(r.db.subgoals, sid)
				}
			}
		}
	}
	return nil
}

type profileRepo struct{ db *memDB }

func (r *profileRepo) Create(_ context.Context, p repository.Profile) (repository.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	r.db.profiles[p.ID] = p
	return p, nil
}

func (r *profileRepo) GetByID(_ context.Context, id string) (repository.Profile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.profiles[id]
	if !ok {
		return repository.Profile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *profileRepo) GetByAccountID(_ context.Context, accountID string) (repository.Profile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, p := range r.db.profiles {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return repository.Profile{}, repository.ErrNotFound
}

func (r *profileRepo) Update(_ context.Context, p repository.Profile) (repository.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.profiles[p.ID]
	if !ok {
		return repository.Profile{}, repository.ErrNotFound
	}
	p.AccountID = existing.AccountID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.db.profiles[p.ID] = p
	return p, nil
}

type goalRepo struct{ db *memDB }

func (r *goalRepo) Create(_ context.Context, g repository.Goal) (repository.Goal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now
	r.db.goals[g.ID] = g
	return g, nil
}

func (r *goalRepo) GetByID(_ context.Context, id string) (repository.Goal, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	g, ok := r.db.goals[id]
	if !ok {
		return repository.Goal{}, repository.ErrNotFound
	}
	return g, nil
}

func (r *goalRepo) ListByProfile(_ context.Context, profileID string) ([]repository.Goal, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var goals []repository.Goal
	for _, g := range r.db.goals {
		if g.ProfileID == profileID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (r *goalRepo) Update(_ context.Context, g repository.Goal) (repository.Goal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.goals[g.ID]
	if !ok {
		return repository.Goal{}, repository.ErrNotFound
	}
	g.ProfileID = existing.ProfileID
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	r.db.goals[g.ID] = g
	return g, nil
}

func (r *goalRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.goals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.goals, id)
	for sid, s := range r.db.subgoals {
		if s.GoalID == id {
			delete(r.db.subgoals, sid)
		}
	}
	return nil
}

type subgoalRepo struct{ db *memDB }

func (r *subgoalRepo) Create(_ context.Context, s repository.Subgoal) (repository.Subgoal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	r.db.subgoals[s.ID] = s
	return s, nil
}

func (r *subgoalRepo) GetByID(_ context.Context, id string) (repository.Subgoal, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.subgoals[id]
	if !ok {
		return repository.Subgoal{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *subgoalRepo) ListByGoal(_ context.Context, goalID string) ([]repository.Subgoal, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var subgoals []repository.Subgoal
	for _, s := range r.db.subgoals {
		if s.GoalID == goalID {
			subgoals = append(subgoals, s)
		}
	}
	return subgoals, nil
}

func (r *subgoalRepo) Update(_ context.Context, s repository.Subgoal) (repository.Subgoal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.subgoals[s.ID]
	if !ok {
		return repository.Subgoal{}, repository.ErrNotFound
	}
	s.GoalID = existing.GoalID
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	r.db.subgoals[s.ID] = s
	return s, nil
}

func (r *subgoalRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.subgoals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.subgoals, id)
	return nil
}
