package dto

import (
	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/helper"
)

type Assignment struct {
	Id          string
	Title       string
	Description string
	Mentor      string
	Deadline    string
	Credits     int
	DaysLeft    int
	Overdue     bool
}

func AssignmentFromModel(a models.Assignment) Assignment {
	out := Assignment{
		Id:          a.Id,
		Title:       a.Title,
		Description: a.Description,
		Mentor:      a.Mentor,
		Deadline:    a.Deadline,
		Credits:     a.Credits,
	}
	if st, err := helper.GetDateStatus(a.Deadline); err == nil {
		out.DaysLeft = st.DaysLeft
		out.Overdue = st.Past
	}
	return out
}

func AssignmentFromModels(list []models.Assignment) []Assignment {
	result := make([]Assignment, len(list))
	for i, a := range list {
		result[i] = AssignmentFromModel(a)
	}
	return result
}
