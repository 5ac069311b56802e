package handlers

import (
	"net/http"
	"strings"

	"github.com/gotnoskillz412/option22/internal/email"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/email"
	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

// NewEmailHandler maneja POST /email, el formulario de contacto.
func NewEmailHandler(svc *email.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SendRequest
		if !readJSON(w, r, &req) {
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Subject = strings.TrimSpace(req.Subject)
		req.Message = strings.TrimSpace(req.Message)
		if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
			httperrors.WriteError(w, httperrors.BadRequest("name, email, subject and message are required"))
			return
		}

		if err := svc.Send(req.Name, req.Email, req.Subject, req.Message); err != nil {
			logger.From(r.Context()).Error("contact email failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.ErrInternal)
			return
		}
		writeJSON(w, http.StatusCreated, dto.SendResponse{Message: "Email sent successfully"})
	}
}
