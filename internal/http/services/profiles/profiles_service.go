// Package profiles implementa el service de perfiles.
package profiles

import (
	"context"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/profile"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

// Deps agrupa las dependencias del service.
type Deps struct {
	Store *repository.Store
}

type Service interface {
	// Me resuelve el profile de la identidad del token.
	Me(ctx context.Context, ident jwtx.Identity) (*dto.Profile, error)
	Update(ctx context.Context, ident jwtx.Identity, profileID string, in dto.UpdateRequest) (*dto.Profile, error)
}

type service struct {
	deps Deps
}

// NewService crea el service de profiles.
func NewService(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Me(ctx context.Context, ident jwtx.Identity) (*dto.Profile, error) {
	profile, err := s.resolve(ctx, ident)
	if err != nil {
		return nil, err
	}
	out := profileDTO(profile)
	return &out, nil
}

// Update solo acepta el profile del caller. Un profileID ajeno se
// comporta como inexistente.
func (s *service) Update(ctx context.Context, ident jwtx.Identity, profileID string, in dto.UpdateRequest) (*dto.Profile, error) {
	profile, err := s.resolve(ctx, ident)
	if err != nil {
		return nil, err
	}
	if profile.ID != profileID {
		return nil, repository.ErrNotFound
	}

	profile.FirstName = in.FirstName
	profile.LastName = in.LastName

	updated, err := s.deps.Store.Profiles.Update(ctx, profile)
	if err != nil {
		return nil, err
	}

	logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("profiles"),
	).Info("profile updated", logger.ProfileID(updated.ID))

	out := profileDTO(updated)
	return &out, nil
}

func (s *service) resolve(ctx context.Context, ident jwtx.Identity) (repository.Profile, error) {
	account, err := s.deps.Store.Accounts.GetByUsername(ctx, ident.Username)
	if err != nil {
		return repository.Profile{}, err
	}
	return s.deps.Store.Profiles.GetByAccountID(ctx, account.ID)
}

func profileDTO(p repository.Profile) dto.Profile {
	return dto.Profile{
		ID:        p.ID,
		AccountID: p.AccountID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}
