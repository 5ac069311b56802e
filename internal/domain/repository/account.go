package repository

import (
	"context"
	"time"
)

// Account es el registro de identidad de una cuenta.
// Username y email son únicos y se almacenan en lowercase.
type Account struct {
	ID        string
	Username  string
	Email     string
	Salt      string
	Hash      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountRepository es el Credential Store: el leaf del que dependen
// el login, el gate y los handlers de cuenta.
type AccountRepository interface {
	Create(ctx context.Context, a Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	// Update persiste username, email, salt y hash.
	Update(ctx context.Context, a Account) (Account, error)
	// Delete elimina la cuenta; el profile dependiente cae en cascada.
	Delete(ctx context.Context, id string) error
}
