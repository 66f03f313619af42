package database

import "github.com/WatthikonJ/Dreamable/database/models"

// Agenda returns a copy of the agenda items. Read-mostly reference data:
// the scheduling tools only list it, creation is still a stub.
func Agenda(s *Store) []models.AgendaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AgendaItem, len(s.agenda))
	copy(out, s.agenda)
	return out
}
