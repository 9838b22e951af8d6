package memory

import (
	"context"
	"errors"
	"io"
	"sync"
)

type Object struct {
	Body        []byte
	ContentType string
}

// Store es un object store en memoria para modo dev y tests.
// FailWith hace que el próximo Put falle con ese error.
type Store struct {
	mu       sync.Mutex
	objects  map[string]Object // bucket/key -> object
	failWith error
}

func NewStore() *Store {
	return &Store{objects: make(map[string]Object)}
}

func (s *Store) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bucket == "" || key == "" {
		return errors.New("bucket and key are required")
	}

	s.mu.Lock()
	failWith := s.failWith
	s.failWith = nil
	s.mu.Unlock()
	if failWith != nil {
		return failWith
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = Object{Body: b, ContentType: contentType}
	return nil
}

func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *Store) Get(bucket, key string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.objects[bucket+"/"+key]
	return o, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
