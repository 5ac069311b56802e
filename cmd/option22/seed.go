package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gotnoskillz412/option22/internal/config"
	"github.com/gotnoskillz412/option22/internal/domain/repository"
	"github.com/gotnoskillz412/option22/internal/security/password"
	"github.com/gotnoskillz412/option22/internal/store/pg"
)

// seed crea una cuenta demo con perfil y un goal de ejemplo. Pensado
// para entornos de desarrollo recién migrados.
func newSeedCmd(configPath *string) *cobra.Command {
	var (
		username = "demo_user"
		email    = "demo@example.com"
		pass     = "Demo1234!"
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea datos de ejemplo en Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Storage.DSN == "" {
				return fmt.Errorf("seed: storage.dsn (or DATABASE_URL) is required")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			pool, err := pg.Open(ctx, pg.Config{DSN: cfg.Storage.DSN})
			if err != nil {
				return err
			}
			defer pool.Close()

			return seed(ctx, pg.New(pool), username, email, pass)
		},
	}

	cmd.Flags().StringVar(&username, "username", username, "username de la cuenta demo")
	cmd.Flags().StringVar(&email, "email", email, "email de la cuenta demo")
	cmd.Flags().StringVar(&pass, "password", pass, "password de la cuenta demo")
	return cmd
}

func seed(ctx context.Context, store *repository.Store, username, email, pass string) error {
	if _, err := store.Accounts.GetByUsername(ctx, username); err == nil {
		fmt.Printf("account %q already exists, nothing to do\n", username)
		return nil
	} else if !repository.IsNotFound(err) {
		return err
	}

	creds, err := password.Generate(pass)
	if err != nil {
		return err
	}

	account, err := store.Accounts.Create(ctx, repository.Account{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Salt:     creds.Salt,
		Hash:     creds.Hash,
	})
	if err != nil {
		return err
	}

	profile, err := store.Profiles.Create(ctx, repository.Profile{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		FirstName: "Demo",
		LastName:  "User",
	})
	if err != nil {
		return err
	}

	goal, err := store.Goals.Create(ctx, repository.Goal{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		Name:        "Try out the API",
		Description: "A starter goal created by the seed command",
		Category:    "getting-started",
	})
	if err != nil {
		return err
	}
	if _, err := store.Subgoals.Create(ctx, repository.Subgoal{
		ID:     uuid.NewString(),
		GoalID: goal.ID,
		Name:   "Log in with the demo account",
	}); err != nil {
		return err
	}

	fmt.Printf("seeded account %q (%s)\n", username, email)
	return nil
}
