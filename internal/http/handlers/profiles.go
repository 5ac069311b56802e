package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/profile"
	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
	"github.com/gotnoskillz412/option22/internal/http/middlewares"
	profilesvc "github.com/gotnoskillz412/option22/internal/http/services/profiles"
)

// NewProfileMeHandler maneja GET /profiles/me.
func NewProfileMeHandler(svc profilesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := middlewares.GetIdentity(r.Context())
		if !ok {
			httperrors.WriteError(w, httperrors.ErrNoToken)
			return
		}

		resp, err := svc.Me(r.Context(), ident)
		if err != nil {
			if repository.IsNotFound(err) {
				httperrors.WriteError(w, httperrors.ErrNotFound)
				return
			}
			httperrors.WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewProfileUpdateHandler maneja PUT /profiles/{profileID}.
func NewProfileUpdateHandler(svc profilesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := middlewares.GetIdentity(r.Context())
		if !ok {
			httperrors.WriteError(w, httperrors.ErrNoToken)
			return
		}

		var req dto.UpdateRequest
		if !readJSON(w, r, &req) {
			return
		}

		resp, err := svc.Update(r.Context(), ident, chi.URLParam(r, "profileID"), req)
		if err != nil {
			if repository.IsNotFound(err) {
				httperrors.WriteError(w, httperrors.ErrNotFound)
				return
			}
			httperrors.WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
