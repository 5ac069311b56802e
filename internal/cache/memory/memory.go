// Package memory implementa cache.Client in-process sobre go-cache.
// Pensado para desarrollo y tests: nunca retorna errores de I/O.
package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/gotnoskillz412/option22/internal/cache"
)

type Mem struct {
	c      *gocache.Cache
	prefix string
}

// New crea un cache en memoria con el TTL por defecto dado.
// La limpieza de entradas expiradas corre cada minuto.
func New(defaultTTL time.Duration, prefix string) *Mem {
	if defaultTTL <= 0 {
		defaultTTL = 2 * time.Minute
	}
	return &Mem{c: gocache.New(defaultTTL, time.Minute), prefix: prefix}
}

func (m *Mem) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.Get(m.prefix + key)
	if !ok {
		return "", cache.ErrNotFound
	}
	s, _ := v.(string)
	return s, nil
}

func (m *Mem) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(m.prefix+key, value, ttl)
	return nil
}

func (m *Mem) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.c.Get(m.prefix + key)
	return ok, nil
}

func (m *Mem) Delete(_ context.Context, key string) error {
	m.c.Delete(m.prefix + key)
	return nil
}

func (m *Mem) Ping(_ context.Context) error { return nil }

func (m *Mem) Close() error {
	m.c.Flush()
	return nil
}
