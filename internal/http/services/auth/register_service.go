package auth

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/auth"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
	"github.com/gotnoskillz412/option22/internal/security/password"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{5,50}$`)

// validPassword: al menos 8 caracteres, mayúscula, minúscula,
// y un dígito o símbolo.
func validPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digitOrSym bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r) || !unicode.IsLetter(r):
			digitOrSym = true
		}
	}
	return upper && lower && digitOrSym
}

type registerService struct {
	deps Deps
}

// NewRegisterService crea el service de registro.
func NewRegisterService(deps Deps) RegisterService {
	return &registerService{deps: deps}
}

func (s *registerService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.register"),
	)

	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Unicidad: primero email, después username, como chequeos explícitos
	// para poder responder cuál de los dos está tomado.
	if _, err := s.deps.Store.Accounts.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !repository.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.deps.Store.Accounts.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	if !validPassword(in.Password) {
		return nil, ErrWeakPassword
	}
	if !usernameRe.MatchString(username) {
		return nil, ErrBadUsername
	}

	creds, err := password.Generate(in.Password)
	if err != nil {
		return nil, err
	}

	account, err := s.deps.Store.Accounts.Create(ctx, repository.Account{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Salt:     creds.Salt,
		Hash:     creds.Hash,
	})
	if err != nil {
		// Carrera contra otro registro con el mismo username/email.
		if repository.IsConflict(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	profile, err := s.deps.Store.Profiles.Create(ctx, repository.Profile{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		// Sin profile la cuenta queda coja: rollback manual del account.
		if delErr := s.deps.Store.Accounts.Delete(ctx, account.ID); delErr != nil {
			log.Error("account rollback failed", logger.AccountID(account.ID), logger.Err(delErr))
		}
		return nil, err
	}

	token, _, err := s.deps.Issuer.Issue(account.Username, account.Email)
	if err != nil {
		log.Error("token issue failed", logger.Err(err))
		return nil, ErrTokenIssueFailed
	}

	log.Info("account registered", logger.AccountID(account.ID), logger.Username(username))

	return &dto.AuthResponse{
		Token:   token,
		Account: accountDTO(account),
		Profile: profileDTO(profile),
	}, nil
}
