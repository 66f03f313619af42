package handlers

import (
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/templates/components/dashboard"
	"github.com/WatthikonJ/Dreamable/templates/views"
)

// HandleHome picks the dashboard for the logged-in user's role. Unknown
// roles go back to login.
func HandleHome(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	user, ok := router.RequireUser(store, w, r)
	if !ok {
		return
	}

	credits := database.Credits(store)

	switch user.Role {
	case models.RoleAdmin:
		content := dashboard.Admin(
			user.Name,
			len(database.Agenda(store)),
			len(database.Submissions(store)),
			len(database.Assignments(store)),
			credits.Admin.TotalGranted,
		)
		render.RenderWithLayout(w, r, views.Shell("Admin Dashboard", dashboard.LogoutButton(), content))

	case models.RoleMentor:
		subs := dto.SubmissionFromModels(database.Submissions(store))
		content := dashboard.Mentor(user.Name, subs, database.Users(store), credits.Mentor.Balance)
		render.RenderWithLayout(w, r, views.Shell("Mentor Dashboard", dashboard.LogoutButton(), content))

	case models.RoleStudent:
		content := dashboard.Student(
			user.Name,
			dto.AssignmentFromModels(database.Assignments(store)),
			dto.ChallengeFromModels(database.Challenges(store)),
			credits.Student.Balance,
			database.Redemptions(store),
		)
		render.RenderWithLayout(w, r, views.Shell("Student Dashboard", dashboard.LogoutButton(), content))

	default:
		router.Navigate(w, r, router.Landing)
	}
}
