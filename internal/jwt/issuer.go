// Package jwt emite y verifica los bearer tokens del servicio.
//
// El token es auto-contenido: lleva la identidad ({username, email}) y un
// expiry absoluto, firmados HS256 con un secret único del servidor. No hay
// estado interno; verificar es función pura del secret y del reloj.
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// TTL por defecto del token. Ventana fija, sin renovación deslizante.
const DefaultTTL = time.Hour

var (
	// ErrNoSecret indica que el signing secret no está configurado.
	// Es una precondición de deploy: el proceso no debe arrancar sin secret.
	ErrNoSecret = errors.New("jwt: signing secret is not set")

	// ErrInvalidToken cubre firma inválida, estructura corrupta y expiry vencido.
	// Deliberadamente no distinguimos "expirado" de "forjado": ambos son
	// "no autenticado" para el caller.
	ErrInvalidToken = errors.New("jwt: invalid token")
)

// Identity es el payload de identidad embebido en el token.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// tokenClaims replica el formato de wire histórico: {exp, data:{username,email}}.
type tokenClaims struct {
	Data Identity `json:"data"`
	jwtv5.RegisteredClaims
}

// Issuer firma y verifica tokens con un secret compartido.
type Issuer struct {
	secret []byte
	ttl    time.Duration

	// now es inyectable para tests de expiry. Default: time.Now.
	now func() time.Time
}

// NewIssuer crea un Issuer. Falla con ErrNoSecret si el secret está vacío
// para que la ausencia se detecte al arrancar y no por request.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL retorna la ventana de vida configurada del token.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue emite un token firmado para la identidad dada.
// Retorna el token y su expiry absoluto.
func (i *Issuer) Issue(username, email string) (string, time.Time, error) {
	now := i.now().UTC()
	exp := now.Add(i.ttl)

	claims := tokenClaims{
		Data: Identity{Username: username, Email: email},
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(exp),
			IssuedAt:  jwtv5.NewNumericDate(now),
		},
	}

	signed, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify chequea firma y expiry, y retorna la identidad embebida.
// Cualquier falla colapsa en ErrInvalidToken.
func (i *Issuer) Verify(raw string) (Identity, error) {
	var claims tokenClaims
	_, err := jwtv5.ParseWithClaims(raw, &claims,
		func(*jwtv5.Token) (any, error) { return i.secret, nil },
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithTimeFunc(i.now),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return claims.Data, nil
}
