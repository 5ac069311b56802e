package auth

import (
	"context"
	"strings"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/auth"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
	"github.com/gotnoskillz412/option22/internal/security/password"
)

type loginService struct {
	deps Deps
}

// NewLoginService crea el service de login.
func NewLoginService(deps Deps) LoginService {
	return &loginService{deps: deps}
}

// Login verifica credenciales por username o email y emite un token nuevo.
// Usuario inexistente y password incorrecto colapsan en el mismo error:
// el mensaje de wire no revela cuál de los dos falló.
func (s *loginService) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
	)

	identifier := strings.ToLower(strings.TrimSpace(in.Username))
	if identifier == "" {
		identifier = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if identifier == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.deps.Store.Accounts.GetByUsername(ctx, identifier)
	if repository.IsNotFound(err) {
		account, err = s.deps.Store.Accounts.GetByEmail(ctx, identifier)
	}
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(in.Password, account.Salt, account.Hash) {
		log.Debug("password check failed", logger.Username(account.Username))
		return nil, ErrInvalidCredentials
	}

	profile, err := s.deps.Store.Profiles.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	token, _, err := s.deps.Issuer.Issue(account.Username, account.Email)
	if err != nil {
		log.Error("token issue failed", logger.Err(err))
		return nil, ErrTokenIssueFailed
	}

	log.Info("login successful", logger.Email(account.Email))

	return &dto.AuthResponse{
		Token:   token,
		Account: accountDTO(account),
		Profile: profileDTO(profile),
	}, nil
}
