package memory

import (
	"sync"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/toys"
)

// Store es la "base" en memoria compartida por todos los repos.
// Un solo mutex para que los cascades (borrar gato/juguete) sean atómicos.
type Store struct {
	mu sync.RWMutex

	cats     map[string]cats.Cat
	toys     map[string]toys.Toy
	catToys  map[string]map[string]struct{} // catID -> set(toyID)
	feedings map[string][]cats.Feeding      // catID -> feedings
	photos   map[string][]cats.Photo        // catID -> photos

	users map[string]accounts.User // username -> user
}

func NewStore() *Store {
	return &Store{
		cats:     make(map[string]cats.Cat),
		toys:     make(map[string]toys.Toy),
		catToys:  make(map[string]map[string]struct{}),
		feedings: make(map[string][]cats.Feeding),
		photos:   make(map[string][]cats.Photo),
		users:    make(map[string]accounts.User),
	}
}
