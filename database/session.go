package database

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/WatthikonJ/Dreamable/database/models"
)

// GenerateSession creates a secure random session token mapping to the
// user's id. Sessions live in memory only; a restart logs everyone out,
// which matches the volatile current-user of the prototype.
func GenerateSession(s *Store, userId string) (string, error) {
	// 32 random bytes = 64 hex characters
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userId
	return token, nil
}

// UserFromSession resolves the logged-in user from a session token. The
// user must still exist in the roster for the session to count.
func UserFromSession(s *Store, token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userId, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	for i := range s.users {
		if s.users[i].Id == userId {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("session user %s not in roster", userId)
}

func DeleteSession(s *Store, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
