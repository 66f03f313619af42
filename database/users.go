package database

import (
	"fmt"
	"time"

	"github.com/WatthikonJ/Dreamable/auth"
	"github.com/WatthikonJ/Dreamable/database/models"
)

// ErrBadCredentials is surfaced to the login form as a modal notice.
var ErrBadCredentials = fmt.Errorf("invalid email or password")

// Authenticate matches email plus exact password equality against the
// roster. No hashing: the roster is mock data and real authentication is
// out of scope here.
func Authenticate(s *Store, email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		u := s.users[i]
		if u.Email == email && auth.CheckPassword(u.Password, password) {
			return &u, nil
		}
	}
	return nil, ErrBadCredentials
}

// SignupUser registers a new student account and returns it. The roster is
// in-memory only, so signups do not survive a restart.
func SignupUser(s *Store, name, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return nil, fmt.Errorf("email %s already registered", email)
		}
	}

	u := models.User{
		Id:       fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Role:     models.RoleStudent,
		Email:    email,
		Password: password,
		Name:     name,
	}
	s.users = append(s.users, u)
	return &u, nil
}

func FindUserById(s *Store, id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Id == id {
			u := s.users[i]
			return &u, true
		}
	}
	return nil, false
}

// FindUserByName matches on display name. Display names are not unique;
// grading relies on this lookup anyway, see GradeSubmission.
func FindUserByName(s *Store, name string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Name == name {
			u := s.users[i]
			return &u, true
		}
	}
	return nil, false
}

// Users returns a copy of the roster for rendering.
func Users(s *Store) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
