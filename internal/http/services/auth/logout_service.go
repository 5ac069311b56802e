package auth

import (
	"context"

	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

type logoutService struct {
	deps Deps
}

// NewLogoutService crea el service de logout.
func NewLogoutService(deps Deps) LogoutService {
	return &logoutService{deps: deps}
}

// Logout escribe el token en el ledger de revocación. Si el write falla
// el logout falla completo: nunca reportamos éxito con un token todavía
// utilizable. Revocar un token ya revocado es un no-op exitoso.
func (s *logoutService) Logout(ctx context.Context, token string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.logout"),
	)

	if err := s.deps.Blacklist.Revoke(ctx, token); err != nil {
		log.Error("blacklist write failed", logger.Err(err))
		return err
	}

	log.Info("token revoked")
	return nil
}
