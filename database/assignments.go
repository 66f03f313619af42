package database

import (
	"fmt"
	"time"

	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/helper"
)

// Assignments returns a copy of the current assignment list.
func Assignments(s *Store) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

func GetAssignment(s *Store, id string) (*models.Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.assignments {
		if s.assignments[i].Id == id {
			a := s.assignments[i]
			return &a, true
		}
	}
	return nil, false
}

// CreateAssignment records mentor as the authoring user's display name.
func CreateAssignment(s *Store, title, description, mentor string, credits int, deadline string) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Assignment{
		Id:          fmt.Sprintf("a%d", time.Now().UnixMilli()),
		Title:       title,
		Description: description,
		Mentor:      mentor,
		Deadline:    deadline,
		Credits:     credits,
	}
	s.assignments = append(s.assignments, a)
	if err := SaveSnapshot(s, KeyAssignments, s.assignments); err != nil {
		return nil, err
	}
	return &a, nil
}

func UpdateAssignment(s *Store, id, title, description string, credits int, deadline string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assignments {
		if s.assignments[i].Id != id {
			continue
		}
		s.assignments[i].Title = title
		s.assignments[i].Description = description
		s.assignments[i].Credits = credits
		s.assignments[i].Deadline = deadline
		return SaveSnapshot(s, KeyAssignments, s.assignments)
	}
	return fmt.Errorf("assignment %s not found", id)
}

func DeleteAssignment(s *Store, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assignments = helper.RemoveFunc(s.assignments, func(a models.Assignment) bool { return a.Id == id })
	return SaveSnapshot(s, KeyAssignments, s.assignments)
}
