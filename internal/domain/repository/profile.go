package repository

import (
	"context"
	"time"
)

// Profile son los datos de perfil asociados a una cuenta (1:1).
type Profile struct {
	ID        string
	AccountID string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProfileRepository interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByAccountID(ctx context.Context, accountID string) (Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
}
