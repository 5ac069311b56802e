// Package password implementa el esquema de credenciales del servicio:
// salt aleatorio por cuenta + HMAC-SHA512 del password keyed por el salt,
// almacenado en hex. El formato es fijo — los digests existentes en la base
// fueron generados así y deben seguir verificando.
package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
)

const saltLength = 32

// Credentials agrupa el salt y el digest listos para persistir.
type Credentials struct {
	Salt string
	Hash string
}

// generateSalt produce un salt hex de saltLength caracteres.
func generateSalt() (string, error) {
	buf := make([]byte, (saltLength+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:saltLength], nil
}

// digest calcula HMAC-SHA512(key=salt, password) en hex.
func digest(password, salt string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// Generate crea un salt nuevo y el digest del password.
func Generate(password string) (Credentials, error) {
	salt, err := generateSalt()
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Salt: salt, Hash: digest(password, salt)}, nil
}

// Verify chequea el password contra el salt y digest almacenados.
func Verify(password, salt, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(digest(password, salt)), []byte(storedHash)) == 1
}
