package handlers

import (
	"errors"
	"net/http"

	dto "github.com/gotnoskillz412/option22/internal/http/dto/auth"
	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
	"github.com/gotnoskillz412/option22/internal/http/middlewares"
	authsvc "github.com/gotnoskillz412/option22/internal/http/services/auth"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

// NewRegisterHandler maneja POST /auth/register.
func NewRegisterHandler(svc authsvc.RegisterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.RegisterRequest
		if !readJSON(w, r, &req) {
			return
		}

		resp, err := svc.Register(r.Context(), req)
		if err != nil {
			httperrors.WriteError(w, mapRegisterError(err))
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func mapRegisterError(err error) error {
	switch {
	case errors.Is(err, authsvc.ErrEmailTaken):
		return httperrors.New(http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, authsvc.ErrUsernameTaken):
		return httperrors.New(http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, authsvc.ErrWeakPassword),
		errors.Is(err, authsvc.ErrBadUsername):
		return httperrors.BadRequest(err.Error())
	default:
		return err
	}
}

// NewLoginHandler maneja POST /auth/login.
func NewLoginHandler(svc authsvc.LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if !readJSON(w, r, &req) {
			return
		}

		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				httperrors.WriteError(w, httperrors.ErrBadCredentials)
				return
			}
			httperrors.WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewLogoutHandler maneja GET /auth/logout. El gate ya corrió: el token
// está en el context. Con redirect_uri responde 302, sin él un body ok.
func NewLogoutHandler(svc authsvc.LogoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middlewares.GetToken(r.Context())
		if err := svc.Logout(r.Context(), token); err != nil {
			logger.From(r.Context()).Error("logout failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.ErrLogoutFailed)
			return
		}

		if uri := r.URL.Query().Get("redirect_uri"); uri != "" {
			http.Redirect(w, r, uri, http.StatusFound)
			return
		}
		writeJSON(w, http.StatusOK, dto.LogoutResponse{OK: true})
	}
}

// NewAccountHandler maneja GET /auth/account.
func NewAccountHandler(svc authsvc.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := middlewares.GetIdentity(r.Context())
		if !ok {
			httperrors.WriteError(w, httperrors.ErrNoToken)
			return
		}

		resp, err := svc.Account(r.Context(), ident)
		if err != nil {
			if errors.Is(err, authsvc.ErrAccountMissing) {
				httperrors.WriteError(w, httperrors.ErrAccountLookup)
				return
			}
			httperrors.WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewPasswordChangeHandler maneja PUT /auth/account/{accountID}/password.
// RequireAccount ya validó ownership y dejó la cuenta en el context.
func NewPasswordChangeHandler(svc authsvc.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middlewares.GetAccount(r.Context())
		if !ok {
			httperrors.WriteError(w, httperrors.ErrAccountLookup)
			return
		}

		var req dto.PasswordChangeRequest
		if !readJSON(w, r, &req) {
			return
		}

		resp, err := svc.ChangePassword(r.Context(), account, req)
		if err != nil {
			switch {
			case errors.Is(err, authsvc.ErrIncorrectPassword):
				httperrors.WriteError(w, httperrors.ErrIncorrectPassword)
			case errors.Is(err, authsvc.ErrWeakPassword):
				httperrors.WriteError(w, httperrors.BadRequest(err.Error()))
			default:
				httperrors.WriteError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewAccountUpdateHandler maneja PUT /auth/account/{accountID}/update.
func NewAccountUpdateHandler(svc authsvc.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middlewares.GetAccount(r.Context())
		if !ok {
			httperrors.WriteError(w, httperrors.ErrAccountLookup)
			return
		}

		var req dto.AccountUpdateRequest
		if !readJSON(w, r, &req) {
			return
		}

		resp, err := svc.UpdateAccount(r.Context(), account, req)
		if err != nil {
			switch {
			case errors.Is(err, authsvc.ErrUsernameTaken):
				httperrors.WriteError(w, httperrors.New(http.StatusConflict, "username_taken", err.Error()))
			case errors.Is(err, authsvc.ErrEmailTaken):
				httperrors.WriteError(w, httperrors.New(http.StatusConflict, "email_taken", err.Error()))
			case errors.Is(err, authsvc.ErrBadUsername):
				httperrors.WriteError(w, httperrors.BadRequest(err.Error()))
			default:
				httperrors.WriteError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
