package database

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/WatthikonJ/Dreamable/database/models"
)

// StateBucket holds one JSON snapshot per collection key.
var StateBucket = []byte("State")

// Persisted collection keys. Users are deliberately absent: the roster is
// reloaded from its source on every start.
const (
	KeyAgenda      = "agenda"
	KeyChallenges  = "challenges"
	KeyAssignments = "assignments"
	KeySubmissions = "submissions"
	KeyRedeems     = "redeems"
	KeyCredits     = "credits"
)

// Store owns the canonical mutable state of the running app. Collections
// under a persisted key are mirrored to bbolt inside every mutation, before
// anything re-renders. Views read through the accessors and never keep
// copies across requests.
type Store struct {
	db *bbolt.DB
	mu sync.RWMutex

	users       []models.User
	agenda      []models.AgendaItem
	challenges  []models.Challenge
	assignments []models.Assignment
	submissions []models.Submission
	redeems     []models.Redemption
	credits     models.CreditLedger

	sessions map[string]string // token -> user id, never persisted
}

func (s *Store) Close() {
	s.db.Close()
}

// SaveSnapshot serializes the whole value under key, replacing the prior
// snapshot. Callers must already hold s.mu.
func SaveSnapshot[T any](s *Store, key string, value T) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(StateBucket)
		if err != nil {
			return err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// LoadSnapshot reads the snapshot under key. ok is false when the key has
// never been written, so the caller can fall back to its defaults.
func LoadSnapshot[T any](s *Store, key string) (out T, ok bool, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(StateBucket)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &out); err != nil {
			return fmt.Errorf("snapshot %s: %w", key, err)
		}
		ok = true
		return nil
	})
	return out, ok, err
}
