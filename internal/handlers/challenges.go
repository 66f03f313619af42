package handlers

import (
	"log"
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/helper"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/templates/components/challengeview"
	"github.com/WatthikonJ/Dreamable/templates/components/modal"
	"github.com/WatthikonJ/Dreamable/templates/el"
	"github.com/WatthikonJ/Dreamable/templates/views"
)

// HandleManageChallenges lists challenges and their submissions. A POST
// with action=delete removes the given challenge; the persisted snapshot
// reflects the removal before the page re-renders.
func HandleManageChallenges(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	if r.Method == http.MethodPost && r.FormValue("action") == "delete" {
		id := r.FormValue("id")
		if err := database.DeleteChallenge(store, id); err != nil {
			log.Printf("delete challenge %s: %v", id, err)
			http.Error(w, "Failed to delete challenge", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "challenges/manage")
		return
	}

	content := challengeview.Manage(
		dto.ChallengeFromModels(database.Challenges(store)),
		dto.SubmissionFromModels(database.Submissions(store)),
	)
	render.RenderWithLayout(w, r, views.Shell("Manage Challenges", challengeview.ManageActions(), content))
}

func challengeFormFromRequest(r *http.Request) (dto.ChallengeForm, error) {
	credits, err := helper.ParseInt(r.FormValue("points"))
	if err != nil {
		return dto.ChallengeForm{}, err
	}
	form := dto.ChallengeForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Credits:     credits,
		Deadline:    r.FormValue("due_date"),
	}
	return form, dto.Validate.Struct(form)
}

// HandleCreateChallenge renders the create form and stores submissions.
func HandleCreateChallenge(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	if r.Method == http.MethodPost {
		form, err := challengeFormFromRequest(r)
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(
				views.Shell("Create Challenge", challengeview.FormActions(), challengeview.Form(nil)),
				modal.Notice("Invalid Challenge", dto.ValidationMessage(err)),
			))
			return
		}
		if _, err := database.CreateChallenge(store, form.Title, form.Description, form.Credits, form.Deadline); err != nil {
			http.Error(w, "Failed to create challenge", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "challenges/manage")
		return
	}

	render.RenderWithLayout(w, r, views.Shell("Create Challenge", challengeview.FormActions(), challengeview.Form(nil)))
}

// HandleEditChallenge edits the challenge named by the :id capture. An
// unknown id falls back to the manage page, not an error.
func HandleEditChallenge(store *database.Store, w http.ResponseWriter, r *http.Request, p router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	c, found := database.GetChallenge(store, p["id"])
	if !found {
		router.Navigate(w, r, "challenges/manage")
		return
	}
	view := dto.ChallengeFromModel(*c)

	if r.Method == http.MethodPost {
		form, err := challengeFormFromRequest(r)
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(
				views.Shell("Edit Challenge", challengeview.FormActions(), challengeview.Form(&view)),
				modal.Notice("Invalid Challenge", dto.ValidationMessage(err)),
			))
			return
		}
		if err := database.UpdateChallenge(store, c.Id, form.Title, form.Description, form.Credits, form.Deadline); err != nil {
			http.Error(w, "Failed to update challenge", http.StatusInternalServerError)
			return
		}
		router.Navigate(w, r, "challenges/manage")
		return
	}

	render.RenderWithLayout(w, r, views.Shell("Edit Challenge", challengeview.FormActions(), challengeview.Form(&view)))
}
