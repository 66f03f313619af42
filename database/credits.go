package database

import (
	"fmt"
	"log"
	"time"

	"github.com/WatthikonJ/Dreamable/database/models"
)

// Credits returns the current ledger.
func Credits(s *Store) models.CreditLedger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credits
}

// GrantCredits adds amount to the recipient's role balance and to the
// admin's cumulative counter, then persists the ledger. Returns the
// recipient for the confirmation notice.
func GrantCredits(s *Store, userId string, amount int, reason string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Id != userId {
			continue
		}
		u := s.users[i]
		addToLedger(&s.credits, u.Role, amount)
		s.credits.Admin.TotalGranted += amount
		log.Printf("granted %d credits to %s for: %s", amount, u.Name, reason)
		if err := SaveSnapshot(s, KeyCredits, s.credits); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, fmt.Errorf("user %s not found", userId)
}

// addToLedger moves a role's aggregate balance. The admin bucket has no
// spendable balance, so grants to admins only show up in TotalGranted.
// Caller holds s.mu.
func addToLedger(c *models.CreditLedger, role string, amount int) {
	switch role {
	case models.RoleStudent:
		c.Student.Balance += amount
	case models.RoleMentor:
		c.Mentor.Balance += amount
	}
}

// Redemptions returns the redemption history, newest last.
func Redemptions(s *Store) []models.Redemption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Redemption, len(s.redeems))
	copy(out, s.redeems)
	return out
}

// AddRedemption appends to the redemption log and persists it. No balance
// is deducted: the redeem flow is a demo stub and kept that way on
// purpose.
func AddRedemption(s *Store, item string) (*models.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := models.Redemption{
		Id:   fmt.Sprintf("r%d", time.Now().UnixMilli()),
		Item: item,
		Date: time.Now().Format("2006-01-02"),
	}
	s.redeems = append(s.redeems, r)
	if err := SaveSnapshot(s, KeyRedeems, s.redeems); err != nil {
		return nil, err
	}
	return &r, nil
}
