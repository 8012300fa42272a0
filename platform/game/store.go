package game

import (
	"sync"
	"time"
)

// Store is the process-wide room registry. The host process owns one
// instance; there is no ambient global.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewStore() *Store {
	return &Store{rooms: make(map[string]*Room)}
}

// Create registers a fresh room. seed <= 0 picks a wall-clock seed.
func (s *Store) Create(seed int64) *Room {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	r := NewRoom(seed)
	s.mu.Lock()
	s.rooms[r.Id] = r
	s.mu.Unlock()
	return r
}

func (s *Store) Get(id string) (*Room, *Error) {
	s.mu.RLock()
	r, ok := s.rooms[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errNotFound("no room %s", id)
	}
	return r, nil
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	delete(s.rooms, id)
	s.mu.Unlock()
}
