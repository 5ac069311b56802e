// Package cachefactory abre el backend de cache configurado.
// Vive fuera de internal/cache para no acoplar la interfaz a sus drivers.
package cachefactory

import (
	"strings"
	"time"

	"github.com/gotnoskillz412/option22/internal/cache"
	cmem "github.com/gotnoskillz412/option22/internal/cache/memory"
	credis "github.com/gotnoskillz412/option22/internal/cache/redis"
)

func Open(cfg cache.Config) (cache.Client, error) {
	switch strings.ToLower(cfg.Kind) {
	case "redis":
		return credis.New(cfg.Addr, cfg.Password, cfg.DB, cfg.Prefix), nil
	default:
		ttl := cfg.DefaultTTL
		if ttl == 0 {
			ttl = 2 * time.Minute
		}
		return cmem.New(ttl, cfg.Prefix), nil
	}
}
