package database

import (
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/WatthikonJ/Dreamable/database/models"
)

// Init opens (or creates) the DB and rehydrates every persisted collection,
// falling back to the built-in defaults for keys never written before.
// The user roster is installed separately, see SetUsers.
func Init(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(StateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, sessions: map[string]string{}}

	if s.agenda, err = loadOrDefault(s, KeyAgenda, defaultAgenda()); err != nil {
		db.Close()
		return nil, err
	}
	if s.challenges, err = loadOrDefault(s, KeyChallenges, defaultChallenges()); err != nil {
		db.Close()
		return nil, err
	}
	if s.assignments, err = loadOrDefault(s, KeyAssignments, defaultAssignments()); err != nil {
		db.Close()
		return nil, err
	}
	if s.submissions, err = loadOrDefault(s, KeySubmissions, defaultSubmissions()); err != nil {
		db.Close()
		return nil, err
	}
	if s.redeems, err = loadOrDefault(s, KeyRedeems, []models.Redemption{}); err != nil {
		db.Close()
		return nil, err
	}
	if s.credits, err = loadOrDefault(s, KeyCredits, defaultCredits()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func loadOrDefault[T any](s *Store, key string, def T) (T, error) {
	v, ok, err := LoadSnapshot[T](s, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// SetUsers installs the roster loaded at startup. In-memory only.
func SetUsers(s *Store, users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

func defaultAgenda() []models.AgendaItem {
	return []models.AgendaItem{
		{Id: "ag1", Date: "2025-09-12", Title: "Kickoff", Time: "10:00", Room: "Main", Status: "Scheduled"},
		{Id: "ag2", Date: "2025-09-13", Title: "Mentor Sync", Time: "14:00", Room: "A2", Status: "Scheduled"},
	}
}

func defaultChallenges() []models.Challenge {
	return []models.Challenge{
		{Id: "c1", Title: "Responsive Landing", Description: "Design and code a responsive landing page.", Credits: 50, Deadline: "2025-09-10"},
		{Id: "c2", Title: "Auth Microservice", Description: "Build a secure authentication microservice.", Credits: 80, Deadline: "2025-09-22"},
	}
}

func defaultAssignments() []models.Assignment {
	return []models.Assignment{
		{Id: "a1", Title: "Week 1: HTML/CSS", Description: "Complete the HTML and CSS exercises.", Mentor: "Mentor User", Deadline: "2025-09-18", Credits: 50},
		{Id: "a2", Title: "Week 2: JS Basics", Description: "Solve basic JavaScript problems.", Mentor: "Mentor User", Deadline: "2025-09-25", Credits: 75},
	}
}

func defaultSubmissions() []models.Submission {
	return []models.Submission{
		{
			Id: "s1", Team: "Team Alpha", Assignment: "Week 1: HTML/CSS", Challenge: "Responsive Landing",
			By: "Alice", At: "2025-09-01 12:00 PM", Status: models.StatusSubmitted,
			Files: []models.SubmissionFile{
				{Name: "index.html", Size: "2.5KB"},
				{Name: "styles.css", Size: "1.2KB"},
			},
		},
		{
			Id: "s2", Team: "Team Beta", Assignment: "Week 2: JS Basics", Challenge: "Auth Microservice",
			By: "Bob", At: "2025-09-02 10:00 AM", Status: models.StatusPending,
			Files: []models.SubmissionFile{
				{Name: "main.js", Size: "5.8KB"},
				{Name: "server.js", Size: "3.1KB"},
			},
		},
		{
			Id: "s3", Team: "Team Gamma", Assignment: "Week 1: HTML/CSS", Challenge: "Database Design",
			By: "Charlie", At: "2025-09-03 09:15 AM", Status: models.StatusSubmitted,
			Files: []models.SubmissionFile{
				{Name: "schema.sql", Size: "0.9KB"},
			},
		},
	}
}

func defaultCredits() models.CreditLedger {
	return models.CreditLedger{
		Admin:   models.AdminCredits{TotalGranted: 1200},
		Mentor:  models.MentorCredits{Balance: 200},
		Student: models.StudentCredits{Balance: 120},
	}
}
