// Package http arma el router y el servidor del API.
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	intauth "github.com/gotnoskillz412/option22/internal/auth"
	"github.com/gotnoskillz412/option22/internal/domain/repository"
	"github.com/gotnoskillz412/option22/internal/email"
	"github.com/gotnoskillz412/option22/internal/http/handlers"
	"github.com/gotnoskillz412/option22/internal/http/middlewares"
	authsvc "github.com/gotnoskillz412/option22/internal/http/services/auth"
	goalsvc "github.com/gotnoskillz412/option22/internal/http/services/goals"
	profilesvc "github.com/gotnoskillz412/option22/internal/http/services/profiles"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
)

// RouterDeps agrupa todo lo que el router necesita para armar las rutas.
type RouterDeps struct {
	Store     *repository.Store
	Issuer    *jwtx.Issuer
	Blacklist *intauth.Blacklist
	Contact   *email.ContactService

	// Handler para /metrics; nil lo omite.
	Metrics stdhttp.Handler
	// Health custom (con ping de cache); nil deja un liveness simple.
	Health stdhttp.HandlerFunc
}

// NewRouter construye el chi.Router completo del API.
//
// Orden de middlewares globales: request id, logging, metrics, recovery.
// El gate de autenticación corre solo en los grupos protegidos.
func NewRouter(deps RouterDeps) chi.Router {
	svcDeps := authsvc.Deps{Store: deps.Store, Issuer: deps.Issuer, Blacklist: deps.Blacklist}

	register := authsvc.NewRegisterService(svcDeps)
	login := authsvc.NewLoginService(svcDeps)
	logout := authsvc.NewLogoutService(svcDeps)
	account := authsvc.NewAccountService(svcDeps)
	profiles := profilesvc.NewService(profilesvc.Deps{Store: deps.Store})
	goals := &handlers.GoalsHandlers{
		Goals:    goalsvc.NewService(goalsvc.Deps{Store: deps.Store}),
		Profiles: profiles,
	}

	requireAuth := middlewares.RequireAuth(deps.Issuer, deps.Blacklist)
	requireAccount := middlewares.RequireAccount(deps.Store.Accounts)

	r := chi.NewRouter()
	r.Use(middlewares.WithRequestID())
	r.Use(middlewares.WithLogging())
	r.Use(middlewares.WithMetrics())
	r.Use(middlewares.WithRecovery())

	r.Get("/", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	health := deps.Health
	if health == nil {
		health = handlers.NewHealthHandler(nil)
	}
	r.Get("/health", health)

	if deps.Metrics != nil {
		r.Method(stdhttp.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(register))
		r.Post("/login", handlers.NewLoginHandler(login))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/logout", handlers.NewLogoutHandler(logout))
			r.Get("/account", handlers.NewAccountHandler(account))

			r.Route("/account/{accountID}", func(r chi.Router) {
				r.Use(requireAccount)
				r.Put("/password", handlers.NewPasswordChangeHandler(account))
				r.Put("/update", handlers.NewAccountUpdateHandler(account))
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/me", handlers.NewProfileMeHandler(profiles))
			r.Put("/{profileID}", handlers.NewProfileUpdateHandler(profiles))
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", goals.List)
			r.Post("/", goals.Create)
			r.Get("/{goalID}", goals.Get)
			r.Put("/{goalID}", goals.Update)
			r.Delete("/{goalID}", goals.Delete)
		})
	})

	if deps.Contact != nil {
		r.Post("/email", handlers.NewEmailHandler(deps.Contact))
	}

	return r
}
