// Package auth contiene el blacklist de tokens revocados.
//
// Un token vive en el blacklist desde el logout hasta que su entrada expira
// por TTL. El TTL del blacklist debe ser >= el TTL del token: si la entrada
// desapareciera antes, un token "deslogueado" volvería a ser válido.
package auth

import (
	"context"
	"time"

	"github.com/gotnoskillz412/option22/internal/cache"
)

// Prefijo de keys en el cache compartido.
const blacklistPrefix = "blacklist:"

// DefaultBlacklistTTL cubre con margen la vida del token (1h).
const DefaultBlacklistTTL = 24 * time.Hour

// Blacklist registra tokens invalidados antes de su expiry natural.
// Es seguro para lectores y escritores concurrentes: cada operación es un
// upsert/lookup atómico de una sola key en el storage subyacente.
type Blacklist struct {
	cache cache.Client
	ttl   time.Duration
}

// NewBlacklist crea un Blacklist sobre el cache dado.
// Si ttl <= 0 usa DefaultBlacklistTTL.
func NewBlacklist(c cache.Client, ttl time.Duration) *Blacklist {
	if ttl <= 0 {
		ttl = DefaultBlacklistTTL
	}
	return &Blacklist{cache: c, ttl: ttl}
}

// Revoke registra el token. Idempotente: revocar dos veces refresca el TTL
// y no es error. Si el write falla, el error se propaga — el logout no debe
// reportar éxito sin un registro durable.
func (b *Blacklist) Revoke(ctx context.Context, token string) error {
	return b.cache.Set(ctx, blacklistPrefix+token, "1", b.ttl)
}

// IsRevoked hace un point lookup del token. Ausencia significa "no revocado",
// lo que incluye entradas ya expiradas: para ese momento el expiry propio del
// token lo rechaza igual. Un error de I/O se propaga, nunca se trata como false.
func (b *Blacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return b.cache.Exists(ctx, blacklistPrefix+token)
}
