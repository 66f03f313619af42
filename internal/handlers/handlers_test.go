package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/internal/router"
)

func testStore(t *testing.T) *database.Store {
	t.Helper()
	s, err := database.Init(filepath.Join(t.TempDir(), "dre.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	database.SetUsers(s, database.FallbackRoster())
	return s
}

func postForm(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// login authenticates as the given fallback account and returns the
// session cookie.
func login(t *testing.T, store *database.Store, email string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := postForm("/login", url.Values{"email": {email}, "password": {"password"}})
	HandleLogin(store, w, r, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/home", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		if c.Name == router.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLoginPageRenders(t *testing.T) {
	store := testStore(t)
	w := httptest.NewRecorder()
	HandleLogin(store, w, httptest.NewRequest(http.MethodGet, "/login", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "<!DOCTYPE html>")
	require.Contains(t, body, `name="email"`)
	require.Contains(t, body, `name="password"`)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := testStore(t)
	w := httptest.NewRecorder()
	r := postForm("/login", url.Values{"email": {"student@example.com"}, "password": {"wrong"}})
	HandleLogin(store, w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Login Failed")
	require.Empty(t, w.Result().Cookies())
}

func TestLoginHTMXRedirect(t *testing.T) {
	store := testStore(t)
	w := httptest.NewRecorder()
	r := postForm("/login", url.Values{"email": {"admin@example.com"}, "password": {"password"}})
	r.Header.Set("HX-Request", "true")
	HandleLogin(store, w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/home", w.Header().Get("HX-Redirect"))
}

func TestHomeRequiresLogin(t *testing.T) {
	store := testStore(t)
	w := httptest.NewRecorder()
	HandleHome(store, w, httptest.NewRequest(http.MethodGet, "/home", nil), nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/"+router.Landing, w.Header().Get("Location"))
}

func TestHomeRendersRoleDashboards(t *testing.T) {
	store := testStore(t)
	cases := []struct {
		email string
		want  string
	}{
		{"admin@example.com", "Admin Dashboard"},
		{"mentor@example.com", "Mentor Dashboard"},
		{"student@example.com", "Student Dashboard"},
	}
	for _, c := range cases {
		cookie := login(t, store, c.email)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/home", nil)
		r.AddCookie(cookie)
		HandleHome(store, w, r, nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), c.want)
	}
}

func TestSignupThenHome(t *testing.T) {
	store := testStore(t)
	w := httptest.NewRecorder()
	r := postForm("/signup", url.Values{
		"name":     {"Dana"},
		"email":    {"dana@example.com"},
		"password": {"secret"},
	})
	HandleSignup(store, w, r, nil)
	require.Equal(t, http.StatusFound, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == router.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/home", nil)
	r.AddCookie(cookie)
	HandleHome(store, w, r, nil)
	require.Contains(t, w.Body.String(), "Student Dashboard")
}

func TestLogoutEndsSession(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "admin@example.com")

	w := httptest.NewRecorder()
	r := postForm("/logout", url.Values{})
	r.AddCookie(cookie)
	HandleLogout(store, w, r, nil)
	require.Equal(t, http.StatusFound, w.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/home", nil)
	r.AddCookie(cookie)
	HandleHome(store, w, r, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/"+router.Landing, w.Header().Get("Location"))
}

func TestCreateChallengeHandler(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "admin@example.com")

	w := httptest.NewRecorder()
	r := postForm("/challenges/create", url.Values{
		"title":       {"API Design"},
		"description": {"Design a REST API."},
		"points":      {"60"},
		"due_date":    {"2025-10-15"},
	})
	r.AddCookie(cookie)
	HandleCreateChallenge(store, w, r, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/challenges/manage", w.Header().Get("Location"))
	require.Len(t, database.Challenges(store), 3)
}

func TestCreateChallengeValidation(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "admin@example.com")

	w := httptest.NewRecorder()
	r := postForm("/challenges/create", url.Values{
		"title":    {""},
		"points":   {"60"},
		"due_date": {"2025-10-15"},
	})
	r.AddCookie(cookie)
	HandleCreateChallenge(store, w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Invalid Challenge")
	require.Len(t, database.Challenges(store), 2)
}

func TestDeleteChallengeViaManage(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "admin@example.com")

	w := httptest.NewRecorder()
	r := postForm("/challenges/manage", url.Values{"action": {"delete"}, "id": {"c1"}})
	r.AddCookie(cookie)
	HandleManageChallenges(store, w, r, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Len(t, database.Challenges(store), 1)
}

func TestEditChallengeUnknownIdFallsBack(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "admin@example.com")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/challenges/edit/ghost", nil)
	r.AddCookie(cookie)
	HandleEditChallenge(store, w, r, router.Params{"id": "ghost"})

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/challenges/manage", w.Header().Get("Location"))
}

func TestGradeSubmissionHandler(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "mentor@example.com")

	w := httptest.NewRecorder()
	r := postForm("/assignments/view/s1", url.Values{"grade": {"88"}})
	r.AddCookie(cookie)
	HandleViewSubmission(store, w, r, router.Params{"id": "s1"})

	require.Equal(t, http.StatusFound, w.Code)
	sub, found := database.GetSubmission(store, "s1")
	require.True(t, found)
	require.NotNil(t, sub.Grade)
	require.Equal(t, 88, *sub.Grade)
}

func TestGradeSubmissionRejectsOutOfRange(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "mentor@example.com")

	w := httptest.NewRecorder()
	r := postForm("/assignments/view/s1", url.Values{"grade": {"150"}})
	r.AddCookie(cookie)
	HandleViewSubmission(store, w, r, router.Params{"id": "s1"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Invalid Grade")
	sub, _ := database.GetSubmission(store, "s1")
	require.Nil(t, sub.Grade)
}

func TestGiveCreditsHandler(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "admin@example.com")

	before := database.Credits(store)
	w := httptest.NewRecorder()
	r := postForm("/credits/give", url.Values{
		"user_select":    {"student-01"},
		"credits_amount": {"25"},
		"reason":         {"great work"},
	})
	r.AddCookie(cookie)
	HandleGiveCredits(store, w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Credits Granted")
	after := database.Credits(store)
	require.Equal(t, before.Student.Balance+25, after.Student.Balance)
	require.Equal(t, before.Admin.TotalGranted+25, after.Admin.TotalGranted)
}

func TestRedeemHandler(t *testing.T) {
	store := testStore(t)
	cookie := login(t, store, "student@example.com")

	w := httptest.NewRecorder()
	r := postForm("/redeem", url.Values{"item": {"hoodie"}})
	r.AddCookie(cookie)
	HandleRedeem(store, w, r, nil)

	require.Equal(t, http.StatusFound, w.Code)
	redeems := database.Redemptions(store)
	require.Len(t, redeems, 1)
	require.Equal(t, "hoodie", redeems[0].Item)
}
