package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/helper"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/templates/components/creditview"
	"github.com/WatthikonJ/Dreamable/templates/components/modal"
	"github.com/WatthikonJ/Dreamable/templates/el"
	"github.com/WatthikonJ/Dreamable/templates/views"
)

// HandleGiveCredits is the admin grant page. A successful grant re-renders
// the form with a confirmation notice naming the recipient.
func HandleGiveCredits(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}

	page := func() templ.Component {
		return views.Shell("Give Credits", creditview.Actions(), creditview.GiveForm(database.Users(store)))
	}

	if r.Method == http.MethodPost {
		amount, err := helper.ParseInt(r.FormValue("credits_amount"))
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(page(),
				modal.Notice("Invalid Grant", "Amount must be a number."),
			))
			return
		}
		form := dto.GrantForm{
			Team:     r.FormValue("team_select"),
			UserId:   r.FormValue("user_select"),
			Category: r.FormValue("category_select"),
			Amount:   amount,
			Reason:   r.FormValue("reason"),
		}
		if err := dto.Validate.Struct(form); err != nil {
			render.RenderWithLayout(w, r, el.Group(page(),
				modal.Notice("Invalid Grant", dto.ValidationMessage(err)),
			))
			return
		}

		user, err := database.GrantCredits(store, form.UserId, form.Amount, form.Reason)
		if err != nil {
			log.Printf("grant credits: %v", err)
			http.Error(w, "Failed to grant credits", http.StatusInternalServerError)
			return
		}
		render.RenderWithLayout(w, r, el.Group(page(),
			modal.Notice("Credits Granted", fmt.Sprintf("Granted %d credits to %s.", form.Amount, user.Name)),
		))
		return
	}

	render.RenderWithLayout(w, r, page())
}

// HandleRedeem logs a redemption request from the student dashboard. The
// flow is intentionally a stub: the item is recorded but no balance moves.
func HandleRedeem(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if _, ok := router.RequireUser(store, w, r); !ok {
		return
	}
	if r.Method != http.MethodPost {
		router.Navigate(w, r, "home")
		return
	}

	form := dto.RedeemForm{Item: r.FormValue("item")}
	if err := dto.Validate.Struct(form); err != nil {
		router.Navigate(w, r, "home")
		return
	}

	if _, err := database.AddRedemption(store, form.Item); err != nil {
		log.Printf("add redemption: %v", err)
		http.Error(w, "Failed to record redemption", http.StatusInternalServerError)
		return
	}
	router.Navigate(w, r, "home")
}
