package database

import (
	"fmt"

	"github.com/WatthikonJ/Dreamable/database/models"
)

// Submissions returns a copy of the current submission list.
func Submissions(s *Store) []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

func GetSubmission(s *Store, id string) (*models.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.submissions {
		if s.submissions[i].Id == id {
			sub := s.submissions[i]
			return &sub, true
		}
	}
	return nil, false
}

// GradeSubmission sets the grade and flips the status to Graded, then
// credits the author's role balance by the grade value. The author is
// looked up by display name, not id; two users sharing a name would credit
// the wrong one, and an unknown name skips the credit while the grade
// still lands. Both behaviors are kept for compatibility with the data
// this replaces.
func GradeSubmission(s *Store, id string, grade int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].Id != id {
			continue
		}

		g := grade
		s.submissions[i].Grade = &g
		s.submissions[i].Status = models.StatusGraded

		credited := false
		for j := range s.users {
			if s.users[j].Name == s.submissions[i].By {
				addToLedger(&s.credits, s.users[j].Role, grade)
				credited = true
				break
			}
		}

		if err := SaveSnapshot(s, KeySubmissions, s.submissions); err != nil {
			return err
		}
		if credited {
			return SaveSnapshot(s, KeyCredits, s.credits)
		}
		return nil
	}
	return fmt.Errorf("submission %s not found", id)
}

// AttachFile appends file metadata to a submission's file list.
func AttachFile(s *Store, id string, file models.SubmissionFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].Id != id {
			continue
		}
		s.submissions[i].Files = append(s.submissions[i].Files, file)
		return SaveSnapshot(s, KeySubmissions, s.submissions)
	}
	return fmt.Errorf("submission %s not found", id)
}
