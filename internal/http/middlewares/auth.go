package middlewares

import (
	"net/http"
	"strings"

	"github.com/gotnoskillz412/option22/internal/auth"
	httperrors "github.com/gotnoskillz412/option22/internal/http/errors"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
)

// =================================================================================
// AUTHENTICATION GATE
// =================================================================================

// BearerToken extrae el token de un header "Authorization: Bearer <token>".
// El esquema es case-insensitive y el valor debe partir en exactamente dos
// segmentos; cualquier otra forma (esquema distinto, segmentos de más o de
// menos) se trata como token ausente, no como "malformado".
func BearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return ""
	}
	return fields[1]
}

// RequireAuth es el chokepoint por el que pasa todo request protegido.
//
// Orden de chequeos:
//  1. Extracción del bearer token (ausente -> 401 fijo).
//  2. Lookup en el blacklist. Va ANTES de verificar la firma: un token
//     revocado se rechaza con un lookup barato sin pagar el costo del HMAC.
//     Una falla de I/O del blacklist es 500, nunca "no revocado".
//  3. Verificación de firma y expiry (cualquier falla -> el mismo 401).
//
// En éxito inyecta la identidad decodificada y el token crudo en el contexto.
func RequireAuth(issuer *jwtx.Issuer, blacklist *auth.Blacklist) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				httperrors.WriteError(w, httperrors.ErrNoToken)
				return
			}

			revoked, err := blacklist.IsRevoked(r.Context(), token)
			if err != nil {
				logger.From(r.Context()).Error("blacklist lookup failed",
					logger.Component("middlewares.auth"),
					logger.Op("IsRevoked"),
					logger.Err(err),
				)
				httperrors.WriteError(w, httperrors.ErrBlacklistCheck)
				return
			}
			if revoked {
				httperrors.WriteError(w, httperrors.ErrOldToken)
				return
			}

			ident, err := issuer.Verify(token)
			if err != nil {
				httperrors.WriteError(w, httperrors.ErrTokenInvalid)
				return
			}

			ctx := WithIdentity(r.Context(), ident)
			ctx = WithToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
