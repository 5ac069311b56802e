// Package auth define los request/response bodies de /auth.
package auth

import profiledto "github.com/gotnoskillz412/option22/internal/http/dto/profile"

// RegisterRequest es el body de POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest es el body de POST /auth/login.
// El identificador puede ser username o email; ambos se normalizan a lowercase.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest es el body de PUT /auth/account/{accountID}/password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AccountUpdateRequest es el body de PUT /auth/account/{accountID}/update.
type AccountUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Account es la vista pública de una cuenta: jamás incluye salt ni hash.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse es la respuesta de login y register: token nuevo + cuenta + perfil.
type AuthResponse struct {
	Token   string             `json:"token"`
	Account Account            `json:"account"`
	Profile profiledto.Profile `json:"profile"`
}

// TokenAccountResponse es la respuesta de los updates de cuenta, que re-emiten token.
type TokenAccountResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// AccountProfileResponse es la respuesta de GET /auth/account.
type AccountProfileResponse struct {
	Account Account            `json:"account"`
	Profile profiledto.Profile `json:"profile"`
}

// LogoutResponse es la respuesta de GET /auth/logout sin redirect.
type LogoutResponse struct {
	OK bool `json:"ok"`
}
