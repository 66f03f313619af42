package handlers

import (
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/templates/components/agendaview"
	"github.com/WatthikonJ/Dreamable/templates/views"
)

// HandleAgenda lists the program agenda.
func HandleAgenda(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}
	content := agendaview.List(database.Agenda(store))
	render.RenderWithLayout(w, r, views.Shell("Agenda", agendaview.Actions(), content))
}
