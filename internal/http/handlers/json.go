// Package handlers contiene los http.HandlerFunc del API.
//
// Los handlers decodifican el body, delegan en el service y traducen
// los errores de dominio al wire format de internal/http/errors.
package handlers

import (
	"encoding/json"
	"net/http"

	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
)

const maxJSONBody = 64 << 10 // 64KB

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
