package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore()
	if err := s.Put(context.Background(), "b", "k.png", strings.NewReader("img"), "image/png"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	o, ok := s.Get("b", "k.png")
	if !ok {
		t.Fatalf("expected object")
	}
	if string(o.Body) != "img" || o.ContentType != "image/png" {
		t.Fatalf("unexpected object: %+v", o)
	}
}

func TestStore_FailWithIsOneShot(t *testing.T) {
	s := NewStore()
	boom := errors.New("boom")
	s.FailWith(boom)

	if err := s.Put(context.Background(), "b", "k", strings.NewReader("x"), ""); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("failed put must not store anything")
	}
	if err := s.Put(context.Background(), "b", "k", strings.NewReader("x"), ""); err != nil {
		t.Fatalf("second put should succeed: %v", err)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Put(ctx, "b", "k", strings.NewReader("x"), ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
