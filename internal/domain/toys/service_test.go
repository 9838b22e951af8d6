package toys_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/domain/toys"
)

func newService() *toys.Service {
	return toys.NewService(memory.NewToyRepo(memory.NewStore()))
}

func ptr(s string) *string { return &s }

func TestCreateAndList_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	mouse, err := svc.Create(ctx, "user-a", toys.CreateInput{Name: " Mouse ", Color: "gray"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if mouse.Name != "Mouse" || mouse.OwnerUserID != "user-a" {
		t.Fatalf("unexpected toy: %+v", mouse)
	}
	if _, err := svc.Create(ctx, "user-b", toys.CreateInput{Name: "Laser", Color: "red"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := svc.ListByOwner(ctx, "user-a")
	if len(got) != 1 || got[0].ID != mouse.ID {
		t.Fatalf("expected only user-a toys, got %+v", got)
	}
	if got, _ := svc.ListByOwner(ctx, ""); len(got) != 0 {
		t.Fatalf("blank owner must list nothing")
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	bad := []toys.CreateInput{
		{Name: "", Color: "red"},
		{Name: "Ball", Color: " "},
		{Name: strings.Repeat("n", toys.MaxNameLen+1), Color: "red"},
		{Name: "Ball", Color: strings.Repeat("c", toys.MaxColorLen+1)},
	}
	for _, in := range bad {
		if _, err := svc.Create(ctx, "user-a", in); !errors.Is(err, toys.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestGetUpdateDelete_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	ball, _ := svc.Create(ctx, "user-a", toys.CreateInput{Name: "Ball", Color: "red"})

	if _, err := svc.Get(ctx, "user-b", ball.ID); !errors.Is(err, toys.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on get, got %v", err)
	}
	if _, err := svc.Update(ctx, "user-b", ball.ID, toys.UpdateInput{Color: ptr("blue")}); !errors.Is(err, toys.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if err := svc.Delete(ctx, "user-b", ball.ID); !errors.Is(err, toys.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-a", "missing"); !errors.Is(err, toys.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	updated, err := svc.Update(ctx, "user-a", ball.ID, toys.UpdateInput{Color: ptr("blue")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Ball" || updated.Color != "blue" || updated.OwnerUserID != "user-a" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := svc.Delete(ctx, "user-a", ball.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, ball.ID); !errors.Is(err, toys.ErrNotFound) {
		t.Fatalf("expected toy gone, got %v", err)
	}
}

func TestOwnerOf(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	ball, _ := svc.Create(ctx, "user-a", toys.CreateInput{Name: "Ball", Color: "red"})

	owner, err := svc.OwnerOf(ctx, ball.ID)
	if err != nil || owner != "user-a" {
		t.Fatalf("expected user-a, got %q err=%v", owner, err)
	}
	if _, err := svc.OwnerOf(ctx, ""); !errors.Is(err, toys.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
