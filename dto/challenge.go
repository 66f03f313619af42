package dto

import (
	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/helper"
)

// Challenge is the view model for a challenge row.
type Challenge struct {
	Id          string
	Title       string
	Description string
	Credits     int
	Deadline    string
	DaysLeft    int
	Overdue     bool
}

func ChallengeFromModel(c models.Challenge) Challenge {
	out := Challenge{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Credits:     c.Credits,
		Deadline:    c.Deadline,
	}
	if st, err := helper.GetDateStatus(c.Deadline); err == nil {
		out.DaysLeft = st.DaysLeft
		out.Overdue = st.Past
	}
	return out
}

func ChallengeFromModels(list []models.Challenge) []Challenge {
	result := make([]Challenge, len(list))
	for i, c := range list {
		result[i] = ChallengeFromModel(c)
	}
	return result
}
