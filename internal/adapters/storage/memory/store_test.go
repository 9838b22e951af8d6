package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/toys"
)

func TestCatRepo_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := NewCatRepo(s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, cats.Cat{ID: fmt.Sprintf("c%02d", i), OwnerUserID: "u1", CreatedAt: time.Unix(int64(i), 0)})
		}(i)
	}
	wg.Wait()

	list, err := repo.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 50 || list[0].ID != "c00" || list[49].ID != "c49" {
		t.Fatalf("unexpected list: len=%d", len(list))
	}
}

func TestCatRepo_UpdateKeepsImmutableFields(t *testing.T) {
	ctx := context.Background()
	repo := NewCatRepo(NewStore())
	created := time.Unix(100, 0)

	_ = repo.Create(ctx, cats.Cat{ID: "c1", OwnerUserID: "u1", Name: "Whiskers", CreatedAt: created})
	if err := repo.Update(ctx, cats.Cat{ID: "c1", OwnerUserID: "u2", Name: "Other", Age: 5}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.GetByID(ctx, "c1")
	if got.OwnerUserID != "u1" || got.Name != "Whiskers" || !got.CreatedAt.Equal(created) || got.Age != 5 {
		t.Fatalf("immutable fields changed: %+v", got)
	}
}

func TestCatRepo_AddToyRequiresBothSides(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	catsRepo := NewCatRepo(s)
	toysRepo := NewToyRepo(s)

	_ = catsRepo.Create(ctx, cats.Cat{ID: "c1", OwnerUserID: "u1"})
	_ = toysRepo.Create(ctx, toys.Toy{ID: "t1", OwnerUserID: "u1"})

	if err := catsRepo.AddToy(ctx, "c1", "nope"); !errors.Is(err, toys.ErrNotFound) {
		t.Fatalf("expected toys.ErrNotFound, got %v", err)
	}
	if err := catsRepo.AddToy(ctx, "nope", "t1"); !errors.Is(err, cats.ErrNotFound) {
		t.Fatalf("expected cats.ErrNotFound, got %v", err)
	}
	if err := catsRepo.CreateFeeding(ctx, cats.Feeding{ID: "f1", CatID: "nope"}); !errors.Is(err, cats.ErrNotFound) {
		t.Fatalf("orphan feeding must be rejected, got %v", err)
	}
}

func TestAccountRepo_CaseInsensitiveUsernames(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepo(NewStore())

	if err := repo.Create(ctx, accounts.User{ID: "u1", Username: "Ana"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, accounts.User{ID: "u2", Username: "ANA"}); !errors.Is(err, accounts.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	u, err := repo.GetByUsername(ctx, "ana")
	if err != nil || u.ID != "u1" || u.Username != "Ana" {
		t.Fatalf("unexpected lookup: %+v err=%v", u, err)
	}
}
