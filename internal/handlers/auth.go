package handlers

import (
	"errors"
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/internal/render"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/templates/components/authview"
	"github.com/WatthikonJ/Dreamable/templates/components/modal"
	"github.com/WatthikonJ/Dreamable/templates/el"
)

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     router.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // set true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleLogin renders the login page and processes credential submissions.
// A mismatch re-renders the form with a modal notice and the session stays
// logged out; the typed email is kept.
func HandleLogin(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	switch r.Method {
	case http.MethodGet:
		render.RenderWithLayout(w, r, authview.Login())

	case http.MethodPost:
		form := dto.LoginForm{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		if err := dto.Validate.Struct(form); err != nil {
			render.RenderWithLayout(w, r, el.Group(authview.Login(), modal.Notice("Login Failed", dto.ValidationMessage(err))))
			return
		}

		user, err := database.Authenticate(store, form.Email, form.Password)
		if err != nil {
			if errors.Is(err, database.ErrBadCredentials) {
				render.RenderWithLayout(w, r, el.Group(authview.Login(), modal.Notice("Login Failed", "Invalid email or password.")))
				return
			}
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		token, err := database.GenerateSession(store, user.Id)
		if err != nil {
			http.Error(w, "Error creating session", http.StatusInternalServerError)
			return
		}
		setSessionCookie(w, token)
		router.Navigate(w, r, "home")

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSignup registers a student account and logs it in immediately.
// Duplicate emails surface a notice with the input retained.
func HandleSignup(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	switch r.Method {
	case http.MethodGet:
		render.RenderWithLayout(w, r, authview.Signup())

	case http.MethodPost:
		form := dto.SignupForm{
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		if err := dto.Validate.Struct(form); err != nil {
			render.RenderWithLayout(w, r, el.Group(authview.Signup(), modal.Notice("Sign Up Failed", dto.ValidationMessage(err))))
			return
		}

		user, err := database.SignupUser(store, form.Name, form.Email, form.Password)
		if err != nil {
			render.RenderWithLayout(w, r, el.Group(authview.Signup(), modal.Notice("Sign Up Failed", "This email is already registered.")))
			return
		}

		token, err := database.GenerateSession(store, user.Id)
		if err != nil {
			http.Error(w, "Error creating session", http.StatusInternalServerError)
			return
		}
		setSessionCookie(w, token)
		router.Navigate(w, r, "home")

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleLogout drops the session and clears the cookie.
func HandleLogout(store *database.Store, w http.ResponseWriter, r *http.Request, _ router.Params) {
	if cookie, err := r.Cookie(router.SessionCookie); err == nil {
		database.DeleteSession(store, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     router.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	router.Navigate(w, r, router.Landing)
}
