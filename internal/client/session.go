package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// UserInfo is the client-side view of the signed-in user.
type UserInfo struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

// Session is the locally persisted credential state: the raw token and the
// user it belongs to. The two are always written and cleared together.
type Session struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user,omitempty"`
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool { return s.Token != "" }

// SessionStore keeps the session in memory and mirrors it to a JSON file,
// the local-storage analogue. It is mutated only by explicit login,
// register and logout actions.
type SessionStore struct {
	path string

	mu      sync.Mutex
	current Session
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the persisted session if one exists. A missing file yields an
// empty, unauthenticated session.
func (s *SessionStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.current = Session{}
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.current); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	return nil
}

// Save replaces the current session and persists it.
func (s *SessionStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	s.current = sess
	return nil
}

// Clear drops the token and user together and removes the file.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Current returns a copy of the in-memory session.
func (s *SessionStore) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
