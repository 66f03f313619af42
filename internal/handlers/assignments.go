package handlers

import (
	"log"
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/helper"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/templates/components/assignmentview"
	"github.com/WatthikonJ/Dreamable/templates/components/modal"
	"github.com/WatthikonJ/Dreamable/templates/el"
	"github.com/WatthikonJ/Dreamable/templates/views"
)

// HandleManageAssignments mirrors the challenge manage page for
// mentor-authored assignments.
func HandleManageAssignments(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	if r.Method == http.MethodPost && r.FormValue("action") == "delete" {
		id := r.FormValue("id")
		if err := database.DeleteAssignment(store, id); err != nil {
			log.Printf("delete assignment %s: %v", id, err)
			http.Error(w, "Failed to delete assignment", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "assignments/manage")
		return
	}

	content := assignmentview.Manage(
		dto.AssignmentFromModels(database.Assignments(store)),
		dto.SubmissionFromModels(database.Submissions(store)),
	)
	render.RenderWithLayout(w, r, views.Shell("Manage Assignments", assignmentview.ManageActions(), content))
}

func assignmentFormFromRequest(r *http.Request) (dto.AssignmentForm, error) {
	credits, err := helper.ParseInt(r.FormValue("points"))
	if err != nil {
		return dto.AssignmentForm{}, err
	}
	form := dto.AssignmentForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Credits:     credits,
		Deadline:    r.FormValue("due_date"),
	}
	return form, dto.Validate.Struct(form)
}

// HandleCreateAssignment stores new assignments with the signed-in user
// recorded as the mentor.
func HandleCreateAssignment(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	user, ok := router.RequireUser(store, w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		form, err := assignmentFormFromRequest(r)
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(
				views.Shell("Create Assignment", assignmentview.FormActions(), assignmentview.Form(nil)),
				modal.Notice("Invalid Assignment", dto.ValidationMessage(err)),
			))
			return
		}
		if _, err := database.CreateAssignment(store, form.Title, form.Description, user.Name, form.Credits, form.Deadline); err != nil {
			http.Error(w, "Failed to create assignment", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "assignments/manage")
		return
	}

	render.RenderWithLayout(w, r, views.Shell("Create Assignment", assignmentview.FormActions(), assignmentview.Form(nil)))
}

// HandleEditAssignment edits the assignment named by the :id capture.
func HandleEditAssignment(store *database.Store, w http.ResponseWriter, r *http.Request, p router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	a, found := database.GetAssignment(store, p["id"])
	if !found {
		router.Navigate(w, r, "assignments/manage")
		return
	}
	view := dto.AssignmentFromModel(*a)

	if r.Method == http.MethodPost {
		form, err := assignmentFormFromRequest(r)
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(
				views.Shell("Edit Assignment", assignmentview.FormActions(), assignmentview.Form(&view)),
				modal.Notice("Invalid Assignment", dto.ValidationMessage(err)),
			))
			return
		}
		if err := database.UpdateAssignment(store, a.Id, form.Title, form.Description, form.Credits, form.Deadline); err != nil {
			http.Error(w, "Failed to update assignment", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "assignments/manage")
		return
	}

	render.RenderWithLayout(w, r, views.Shell("Edit Assignment", assignmentview.FormActions(), assignmentview.Form(&view)))
}
