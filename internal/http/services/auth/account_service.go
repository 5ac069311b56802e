package auth

import (
	"context"
	"strings"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/auth"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
	"github.com/gotnoskillz412/option22/internal/security/password"
)

type accountService struct {
	deps Deps
}

// NewAccountService crea el service de lectura y updates de cuenta.
func NewAccountService(deps Deps) AccountService {
	return &accountService{deps: deps}
}

// Account resuelve la cuenta y el profile a partir de la identidad del token.
func (s *accountService) Account(ctx context.Context, ident jwtx.Identity) (*dto.AccountProfileResponse, error) {
	account, err := s.deps.Store.Accounts.GetByUsername(ctx, ident.Username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}

	profile, err := s.deps.Store.Profiles.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AccountProfileResponse{
		Account: accountDTO(account),
		Profile: profileDTO(profile),
	}, nil
}

// ChangePassword exige el password actual, re-genera salt y hash y
// re-emite token. El salt nuevo invalida el digest anterior por completo.
func (s *accountService) ChangePassword(ctx context.Context, account repository.Account, in dto.PasswordChangeRequest) (*dto.TokenAccountResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.account"),
	)

	if !password.Verify(in.CurrentPassword, account.Salt, account.Hash) {
		return nil, ErrIncorrectPassword
	}
	if !validPassword(in.NewPassword) {
		return nil, ErrWeakPassword
	}

	creds, err := password.Generate(in.NewPassword)
	if err != nil {
		return nil, err
	}
	account.Salt = creds.Salt
	account.Hash = creds.Hash

	updated, err := s.deps.Store.Accounts.Update(ctx, account)
	if err != nil {
		return nil, err
	}

	token, _, err := s.deps.Issuer.Issue(updated.Username, updated.Email)
	if err != nil {
		log.Error("token issue failed", logger.Err(err))
		return nil, ErrTokenIssueFailed
	}

	log.Info("password changed", logger.AccountID(updated.ID))

	return &dto.TokenAccountResponse{
		Token:   token,
		Account: accountDTO(updated),
	}, nil
}

// UpdateAccount cambia username y/o email y re-emite token, porque el
// payload del token viejo quedaría desfasado respecto de la cuenta.
func (s *accountService) UpdateAccount(ctx context.Context, account repository.Account, in dto.AccountUpdateRequest) (*dto.TokenAccountResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.account"),
	)

	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username != "" && username != account.Username {
		if !usernameRe.MatchString(username) {
			return nil, ErrBadUsername
		}
		if _, err := s.deps.Store.Accounts.GetByUsername(ctx, username); err == nil {
			return nil, ErrUsernameTaken
		} else if !repository.IsNotFound(err) {
			return nil, err
		}
		account.Username = username
	}
	if email != "" && email != account.Email {
		if _, err := s.deps.Store.Accounts.GetByEmail(ctx, email); err == nil {
			return nil, ErrEmailTaken
		} else if !repository.IsNotFound(err) {
			return nil, err
		}
		account.Email = email
	}

	updated, err := s.deps.Store.Accounts.Update(ctx, account)
	if err != nil {
		if repository.IsConflict(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, _, err := s.deps.Issuer.Issue(updated.Username, updated.Email)
	if err != nil {
		log.Error("token issue failed", logger.Err(err))
		return nil, ErrTokenIssueFailed
	}

	log.Info("account updated", logger.AccountID(updated.ID))

	return &dto.TokenAccountResponse{
		Token:   token,
		Account: accountDTO(updated),
	}, nil
}
