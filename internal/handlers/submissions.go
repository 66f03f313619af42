package handlers

import (
	"log"
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/helper"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/storage"
	"github.com/WatthikonJ/Dreamable/templates/components/assignmentview"
	"github.com/WatthikonJ/Dreamable/templates/components/modal"
	"github.com/WatthikonJ/Dreamable/templates/el"
	"github.com/WatthikonJ/Dreamable/templates/views"
)

// Attachments is set at startup when B2 credentials are configured. When
// nil, uploads record file metadata only.
var Attachments *storage.B2Storage

const maxUploadSize = 32 << 20

// HandleViewSubmission shows a submission's files and grading form. POSTs
// carry either an uploaded attachment or a grade.
func HandleViewSubmission(store *database.Store, w http.ResponseWriter, r *http.Request, p router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	sub, found := database.GetSubmission(store, p["id"])
	if !found {
		router.Navigate(w, r, "assignments/manage")
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil && err != http.ErrNotMultipart {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		if r.FormValue("action") == "upload" {
			handleUpload(store, w, r, sub)
			return
		}

		grade, err := helper.ParseGrade(r.FormValue("grade"))
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(
				views.Shell("Review Submission", assignmentview.FormActions(), assignmentview.SubmissionDetail(dto.SubmissionFromModel(*sub))),
				modal.Notice("Invalid Grade", "Grade must be a number between 0 and 100."),
			))
			return
		}
		if err := database.GradeSubmission(store, sub.Id, grade); err != nil {
			log.Printf("grade submission %s: %v", sub.Id, err)
			http.Error(w, "Failed to grade submission", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "assignments/manage")
		return
	}

	content := assignmentview.SubmissionDetail(dto.SubmissionFromModel(*sub))
	render.RenderWithLayout(w, r, views.Shell("Review Submission", assignmentview.FormActions(), content))
}

func handleUpload(store *database.Store, w http.ResponseWriter, r *http.Request, sub *models.Submission) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := helper.NormalizeFilename(header.Filename)

	if Attachments != nil {
		key := sub.Id + "/" + name
		if _, err := Attachments.UploadFile(r.Context(), key, file); err != nil {
			log.Printf("upload %s: %v", key, err)
			http.Error(w, "Failed to store file", http.StatusInternalServerError)
			return
		}
	}

	meta := models.SubmissionFile{Name: name, Size: helper.FormatSize(header.Size)}
	if err := database.AttachFile(store, sub.Id, meta); err != nil {
		log.Printf("attach file to %s: %v", sub.Id, err)
		http.Error(w, "Failed to attach file", http.StatusInternalServerError)
		return
	}
	router.Navigate(w, r, "assignments/view/"+sub.Id)
}
