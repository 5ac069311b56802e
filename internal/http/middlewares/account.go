package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

// RequireAccount resuelve el path param {accountID} contra el credential
// store y guarda la cuenta en el contexto. Debe usarse después de
// RequireAuth: además verifica que la cuenta sea la del token, para que
// una sesión no opere sobre cuentas ajenas.
//
// Cuenta inexistente -> 404 sin body; falla del store -> 500.
func RequireAccount(accounts repository.AccountRepository) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "accountID")
			if id == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			account, err := accounts.GetByID(r.Context(), id)
			if err != nil {
				if repository.IsNotFound(err) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				logger.From(r.Context()).Error("account lookup failed",
					logger.Component("middlewares.account"),
					logger.AccountID(id),
					logger.Err(err),
				)
				httperrors.WriteError(w, httperrors.ErrAccountLookup)
				return
			}

			if ident, ok := GetIdentity(r.Context()); !ok || ident.Username != account.Username {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}
