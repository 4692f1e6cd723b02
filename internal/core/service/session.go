package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

// SessionStore holds the one live session: the signed-in user and the raw
// bearer token. Authorization is always recomputed from the current token,
// and the pair is persisted to durable storage so a restart resumes the
// session. Persistence is best-effort; the server-issued token remains the
// source of truth.
type SessionStore struct {
	mu      sync.RWMutex
	user    *domain.User
	token   string
	storage ports.SessionStorage
	log     zerolog.Logger
}

func NewSessionStore(storage ports.SessionStorage, log zerolog.Logger) *SessionStore {
	return &SessionStore{storage: storage, log: log}
}

// SetAuth installs the authenticated user and token, deriving the user's
// role from the token claim, and writes both storage slots.
func (s *SessionStore) SetAuth(ctx context.Context, user domain.User, token string) {
	user.Role = RoleFromToken(token)

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: marshal user for persistence")
		return
	}
	if err := s.storage.Save(ctx, string(raw), token); err != nil {
		s.log.Warn().Err(err).Msg("session: persist failed, continuing in-memory")
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("session established")
}

// Logout erases the in-memory identity and clears both storage slots.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session: clear persisted state failed")
	}

	s.log.Info().Msg("session cleared")
}

// IsAuthenticated reports whether both a token and a user are present.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// IsAdmin resolves the role from the current token on every call. The
// token claim is authoritative; a stale role cached on the user record can
// never grant elevated access.
func (s *SessionStore) IsAdmin() bool {
	return s.Role() == domain.RoleAdmin
}

// Role returns the role derived from the current token.
func (s *SessionStore) Role() string {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	return RoleFromToken(token)
}

// Token returns the raw bearer token, empty when signed out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns a copy of the signed-in user. ok is false when the
// session is unauthenticated.
func (s *SessionStore) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.token == "" {
		return domain.User{}, false
	}
	return *s.user, true
}

// Restore loads the persisted session at startup. The session becomes
// valid only when both slots are present and the user record parses; the
// role is re-derived from the token and merged into the restored user.
// Anything else fails open to signed-out, never to a guessed identity.
func (s *SessionStore) Restore(ctx context.Context) {
	userJSON, token, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: restore read failed, starting signed out")
		return
	}
	if userJSON == "" || token == "" {
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.log.Warn().Err(err).Msg("session: stored user unparsable, starting signed out")
		return
	}
	user.Role = RoleFromToken(token)

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("session restored")
}
