package middlewares

import (
	"context"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyIdentity
	ctxKeyToken
	ctxKeyAccount
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, rid)
}

// GetRequestID retorna el request ID inyectado por WithRequestID, o "".
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

// WithIdentity guarda la identidad decodificada del token en el contexto.
func WithIdentity(ctx context.Context, ident jwtx.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, ident)
}

// GetIdentity retorna la identidad autenticada. ok=false si el request
// no pasó por RequireAuth.
func GetIdentity(ctx context.Context) (jwtx.Identity, bool) {
	v, ok := ctx.Value(ctxKeyIdentity).(jwtx.Identity)
	return v, ok
}

// WithToken guarda el bearer token crudo; el logout lo necesita para
// registrarlo en el blacklist.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

// GetToken retorna el bearer token crudo del request autenticado.
func GetToken(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyToken).(string)
	return v
}

// WithAccount guarda la cuenta resuelta por RequireAccount.
func WithAccount(ctx context.Context, a repository.Account) context.Context {
	return context.WithValue(ctx, ctxKeyAccount, a)
}

// GetAccount retorna la cuenta resuelta desde el path param.
func GetAccount(ctx context.Context) (repository.Account, bool) {
	v, ok := ctx.Value(ctxKeyAccount).(repository.Account)
	return v, ok
}
