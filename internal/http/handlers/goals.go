package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/goals"
	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
	"github.com/gotnoskillz412/option22/internal/http/middlewares"
	goalsvc "github.com/gotnoskillz412/option22/internal/http/services/goals"
	profilesvc "github.com/gotnoskillz412/option22/internal/http/services/profiles"
)

// GoalsHandlers agrupa los handlers de /goals. Todos resuelven primero
// el profile del caller a partir de la identidad del token.
type GoalsHandlers struct {
	Goals    goalsvc.Service
	Profiles profilesvc.Service
}

func (h *GoalsHandlers) callerProfileID(w http.ResponseWriter, r *http.Request) (string, bool) {
	ident, ok := middlewares.GetIdentity(r.Context())
	if !ok {
		httperrors.WriteError(w, httperrors.ErrNoToken)
		return "", false
	}
	profile, err := h.Profiles.Me(r.Context(), ident)
	if err != nil {
		if repository.IsNotFound(err) {
			httperrors.WriteError(w, httperrors.ErrNotFound)
			return "", false
		}
		httperrors.WriteError(w, err)
		return "", false
	}
	return profile.ID, true
}

// List maneja GET /goals.
func (h *GoalsHandlers) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.callerProfileID(w, r)
	if !ok {
		return
	}

	resp, err := h.Goals.List(r.Context(), profileID)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get maneja GET /goals/{goalID}.
func (h *GoalsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.callerProfileID(w, r)
	if !ok {
		return
	}

	resp, err := h.Goals.Get(r.Context(), profileID, chi.URLParam(r, "goalID"))
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

// Create maneja POST /goals.
func (h *GoalsHandlers) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.callerProfileID(w, r)
	if !ok {
		return
	}

	var req dto.Goal
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		httperrors.WriteError(w, httperrors.BadRequest("goal name is required"))
		return
	}

	resp, err := h.Goals.Create(r.Context(), profileID, req)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Update maneja PUT /goals/{goalID}.
func (h *GoalsHandlers) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.callerProfileID(w, r)
	if !ok {
		return
	}

	var req dto.Goal
	if !readJSON(w, r, &req) {
		return
	}

	resp, err := h.Goals.Update(r.Context(), profileID, chi.URLParam(r, "goalID"), req)
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

// Delete maneja DELETE /goals/{goalID}. Responde 202 con body vacío.
func (h *GoalsHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.callerProfileID(w, r)
	if !ok {
		return
	}

	if err := h.Goals.Delete(r.Context(), profileID, chi.URLParam(r, "goalID")); err != nil {
		if repository.IsNotFound(err) {
			httperrors.WriteError(w, httperrors.ErrNotFound)
			return
		}
		httperrors.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
