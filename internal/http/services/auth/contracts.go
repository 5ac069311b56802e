// Package auth implementa los services del flujo de cuentas:
// register, login, logout, lectura y updates de cuenta.
//
// Los services retornan errores de dominio (vars de este package); los
// handlers los traducen al wire format. Ningún error crudo de storage
// llega al cliente.
package auth

import (
	"context"
	"fmt"

	"github.com/gotnoskillz412/option22/internal/auth"
	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/auth"
	profiledto "github.com/gotnoskillz412/option22/internal/http/dto/profile"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
)

// Deps agrupa las dependencias compartidas por los services de auth.
type Deps struct {
	Store     *repository.Store
	Issuer    *jwtx.Issuer
	Blacklist *auth.Blacklist
}

type RegisterService interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error)
}

type LoginService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)
}

type LogoutService interface {
	// Logout registra el token en el blacklist. Solo retorna nil después
	// de un write durable. Idempotente.
	Logout(ctx context.Context, token string) error
}

type AccountService interface {
	Account(ctx context.Context, ident jwtx.Identity) (*dto.AccountProfileResponse, error)
	ChangePassword(ctx context.Context, account repository.Account, in dto.PasswordChangeRequest) (*dto.TokenAccountResponse, error)
	UpdateAccount(ctx context.Context, account repository.Account, in dto.AccountUpdateRequest) (*dto.TokenAccountResponse, error)
}

// Errores de los services de auth.
var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrEmailTaken         = fmt.Errorf("account with that email already exists")
	ErrUsernameTaken      = fmt.Errorf("account with that username already exists")
	ErrWeakPassword       = fmt.Errorf("password did not meet requirements")
	ErrBadUsername        = fmt.Errorf("username must be alphanumeric and between 5 and 50 characters")
	ErrIncorrectPassword  = fmt.Errorf("incorrect password")
	ErrAccountMissing     = fmt.Errorf("failed to find account")
	ErrTokenIssueFailed   = fmt.Errorf("failed to issue token")
)

func accountDTO(a repository.Account) dto.Account {
	return dto.Account{ID: a.ID, Username: a.Username, Email: a.Email}
}

func profileDTO(p repository.Profile) profiledto.Profile {
	return profiledto.Profile{
		ID:        p.ID,
		AccountID: p.AccountID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}
