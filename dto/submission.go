package dto

import (
	"strconv"

	"github.com/WatthikonJ/Dreamable/database/models"
)

type Submission struct {
	Id         string
	Team       string
	Assignment string
	Challenge  string
	By         string
	At         string
	Status     string
	StatusTone string // pill class on the dashboards
	GradeText  string // empty until graded
	Files      []models.SubmissionFile
}

func SubmissionFromModel(s models.Submission) Submission {
	out := Submission{
		Id:         s.Id,
		Team:       s.Team,
		Assignment: s.Assignment,
		Challenge:  s.Challenge,
		By:         s.By,
		At:         s.At,
		Status:     s.Status,
		StatusTone: "warn",
		Files:      s.Files,
	}
	if s.Status == models.StatusSubmitted {
		out.StatusTone = "ok"
	}
	if s.Grade != nil {
		out.GradeText = strconv.Itoa(*s.Grade)
	}
	return out
}

func SubmissionFromModels(list []models.Submission) []Submission {
	result := make([]Submission, len(list))
	for i, s := range list {
		result[i] = SubmissionFromModel(s)
	}
	return result
}
