package cart

import (
	"sync"
)

// Store keeps one session cart per user, in memory only. Each cart has a
// single logical owner, but gin serves requests concurrently so access is
// mutex-guarded.
type Store struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[uint]*Cart)}
}

// Items returns a copy of the user's cart lines. An unknown user reads as
// an empty cart.
func (s *Store) Items(userID uint) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		return nil
	}
	return c.Items()
}

// With runs fn while holding the store lock, so a read-modify-write on one
// cart cannot interleave with another request for the same user. The *Cart
// must not escape fn; it is only safe to touch under the lock.
func (s *Store) With(userID uint, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	fn(c)
}

// Drop forgets the user's cart entirely (logout).
func (s *Store) Drop(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
