// Package memory provides an in-process SessionStorage for tests and for
// running the gateway without Redis.
package memory

import (
	"context"
	"sync"
)

type SessionStorage struct {
	mu       sync.Mutex
	userJSON string
	token    string
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{}
}

func (s *SessionStorage) Save(_ context.Context, userJSON, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userJSON = userJSON
	s.token = token
	return nil
}

func (s *SessionStorage) Load(_ context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userJSON, s.token, nil
}

func (s *SessionStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userJSON = ""
	s.token = ""
	return nil
}
