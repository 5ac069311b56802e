package goals

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gotnoskillz412/option22/internal/domain/repository"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/goals"
	"github.com/gotnoskillz412/option22/internal/store/mem"
)

func seedProfile(t *testing.T, store *repository.Store) repository.Profile {
	t.Helper()
	ctx := context.Background()
	account, err := store.Accounts.Create(ctx, repository.Account{
		ID:       uuid.NewString(),
		Username: "user_" + uuid.NewString()[:8],
		Email:    uuid.NewString()[:8] + "@example.com",
		Salt:     "salt",
		Hash:     "hash",
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	profile, err := store.Profiles.Create(ctx, repository.Profile{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

func TestCreateAndListGoals(t *testing.T) {
	store := mem.New()
	profile := seedProfile(t, store)
	svc := NewService(Deps{Store: store})
	ctx := context.Background()

	created, err := svc.Create(ctx, profile.ID, dto.Goal{
		Name:     "learn guitar",
		Category: "hobby",
		Subgoals: []dto.Subgoal{{Name: "buy guitar"}, {Name: "first lesson"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || len(created.Subgoals) != 2 {
		t.Fatalf("created = %+v", created)
	}

	list, err := svc.List(ctx, profile.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Total != 1 || len(list.Data) != 1 {
		t.Fatalf("list = %+v", list)
	}
	if len(list.Data[0].Subgoals) != 2 {
		t.Fatalf("subgoals = %+v", list.Data[0].Subgoals)
	}
}

func TestGoalsScopedToProfile(t *testing.T) {
	store := mem.New()
	owner := seedProfile(t, store)
	other := seedProfile(t, store)
	svc := NewService(Deps{Store: store})
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, dto.Goal{Name: "run 5k"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Desde otro profile el goal no existe.
	if _, err := svc.Get(ctx, other.ID, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("cross-profile Get: got %v", err)
	}
	if err := svc.Delete(ctx, other.ID, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("cross-profile Delete: got %v", err)
	}

	list, err := svc.List(ctx, other.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Total != 0 {
		t.Fatalf("other profile sees %d goals", list.Total)
	}
}

func TestUpdateReconcilesSubgoals(t *testing.T) {
	store := mem.New()
	profile := seedProfile(t, store)
	svc := NewService(Deps{Store: store})
	ctx := context.Background()

	created, err := svc.Create(ctx, profile.ID, dto.Goal{
		Name:     "read more",
		Subgoals: []dto.Subgoal{{Name: "book one"}, {Name: "book two"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Conservamos el primero (completado), eliminamos el segundo por
	// omisión y damos de alta un tercero.
	updated, err := svc.Update(ctx, profile.ID, created.ID, dto.Goal{
		Name: "read a lot more",
		Subgoals: []dto.Subgoal{
			{ID: created.Subgoals[0].ID, Name: "book one", Completed: true},
			{Name: "book three"},
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "read a lot more" {
		t.Fatalf("name = %q", updated.Name)
	}
	if len(updated.Subgoals) != 2 {
		t.Fatalf("subgoals = %+v", updated.Subgoals)
	}
	if !updated.Subgoals[0].Completed {
		t.Fatal("kept subgoal should be completed")
	}

	remaining, err := store.Subgoals.ListByGoal(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListByGoal: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("store has %d subgoals, want 2", len(remaining))
	}
	for _, sg := range remaining {
		if sg.ID == created.Subgoals[1].ID {
			t.Fatal("omitted subgoal survived the update")
		}
	}
}

func TestDeleteCascadesSubgoals(t *testing.T) {
	store := mem.New()
	profile := seedProfile(t, store)
	svc := NewService(Deps{Store: store})
	ctx := context.Background()

	created, err := svc.Create(ctx, profile.ID, dto.Goal{
		Name:     "declutter",
		Subgoals: []dto.Subgoal{{Name: "closet"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, profile.ID, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, profile.ID, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("deleted goal Get: got %v", err)
	}
	subs, err := store.Subgoals.ListByGoal(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListByGoal: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("subgoals survived delete: %+v", subs)
	}
}
