package database

import (
	"fmt"
	"time"

	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/helper"
)

// Challenges returns a copy of the current challenge list.
func Challenges(s *Store) []models.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Challenge, len(s.challenges))
	copy(out, s.challenges)
	return out
}

func GetChallenge(s *Store, id string) (*models.Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.challenges {
		if s.challenges[i].Id == id {
			c := s.challenges[i]
			return &c, true
		}
	}
	return nil, false
}

func CreateChallenge(s *Store, title, description string, credits int, deadline string) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Challenge{
		Id:          fmt.Sprintf("c%d", time.Now().UnixMilli()),
		Title:       title,
		Description: description,
		Credits:     credits,
		Deadline:    deadline,
	}
	s.challenges = append(s.challenges, c)
	if err := SaveSnapshot(s, KeyChallenges, s.challenges); err != nil {
		return nil, err
	}
	return &c, nil
}

func UpdateChallenge(s *Store, id, title, description string, credits int, deadline string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.challenges {
		if s.challenges[i].Id != id {
			continue
		}
		s.challenges[i].Title = title
		s.challenges[i].Description = description
		s.challenges[i].Credits = credits
		s.challenges[i].Deadline = deadline
		return SaveSnapshot(s, KeyChallenges, s.challenges)
	}
	return fmt.Errorf("challenge %s not found", id)
}

// DeleteChallenge removes exactly the entry matching id and persists the
// shrunken snapshot before returning.
func DeleteChallenge(s *Store, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges = helper.RemoveFunc(s.challenges, func(c models.Challenge) bool { return c.Id == id })
	return SaveSnapshot(s, KeyChallenges, s.challenges)
}
