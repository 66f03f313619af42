package router

import (
	"net/http"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/database/models"
)

// SessionCookie carries the session token.
const SessionCookie = "session_id"

// CurrentUser resolves the logged-in user from the session cookie.
func CurrentUser(store *database.Store, r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, err
	}
	return database.UserFromSession(store, cookie.Value)
}

// RequireUser returns the logged-in user, or redirects to the landing page
// and reports false. Everything except login and signup sits behind it.
func RequireUser(store *database.Store, w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := CurrentUser(store, r)
	if err != nil {
		Navigate(w, r, Landing)
		return nil, false
	}
	return user, true
}
