package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func named(name string, hits *[]string) Handler {
	return func(w http.ResponseWriter, r *http.Request, p Params) {
		*hits = append(*hits, name)
	}
}

func TestResolveLiteral(t *testing.T) {
	var hits []string
	rt := New()
	rt.Register("challenges/manage", named("manage", &hits))

	h, params, ok := rt.Resolve("challenges/manage")
	if !ok {
		t.Fatal("expected match")
	}
	if len(params) != 0 {
		t.Errorf("params = %v, want empty", params)
	}
	h(nil, nil, params)
	if len(hits) != 1 || hits[0] != "manage" {
		t.Errorf("hits = %v", hits)
	}
}

func TestResolveCapture(t *testing.T) {
	rt := New()
	rt.Register("challenges/edit/:id", func(w http.ResponseWriter, r *http.Request, p Params) {})

	_, params, ok := rt.Resolve("challenges/edit/c42")
	if !ok {
		t.Fatal("expected match")
	}
	if params["id"] != "c42" {
		t.Errorf("id = %q, want %q", params["id"], "c42")
	}
}

func TestResolveDecodesCaptures(t *testing.T) {
	rt := New()
	rt.Register("assignments/view/:id", func(w http.ResponseWriter, r *http.Request, p Params) {})

	_, params, ok := rt.Resolve("assignments/view/a%201")
	if !ok {
		t.Fatal("expected match")
	}
	if params["id"] != "a 1" {
		t.Errorf("id = %q, want %q", params["id"], "a 1")
	}
}

func TestResolveSegmentCountMustMatch(t *testing.T) {
	rt := New()
	rt.Register("challenges/edit/:id", func(w http.ResponseWriter, r *http.Request, p Params) {})

	if _, _, ok := rt.Resolve("challenges/edit"); ok {
		t.Error("two segments matched a three-segment pattern")
	}
	if _, _, ok := rt.Resolve("challenges/edit/c1/extra"); ok {
		t.Error("four segments matched a three-segment pattern")
	}
}

func TestResolveRegistrationOrderWins(t *testing.T) {
	var hits []string
	rt := New()
	rt.Register("challenges/:action", named("capture", &hits))
	rt.Register("challenges/manage", named("literal", &hits))

	h, _, ok := rt.Resolve("challenges/manage")
	if !ok {
		t.Fatal("expected match")
	}
	h(nil, nil, nil)
	if hits[len(hits)-1] != "capture" {
		t.Errorf("first registered pattern should win, got %q", hits[len(hits)-1])
	}
}

func TestRegisterDuplicateOverwritesInPlace(t *testing.T) {
	var hits []string
	rt := New()
	rt.Register("home", named("old", &hits))
	rt.Register("agenda", named("agenda", &hits))
	rt.Register("home", named("new", &hits))

	if len(rt.routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(rt.routes))
	}
	if rt.routes[0].pattern != "home" {
		t.Errorf("overwrite moved the pattern to position %q", rt.routes[0].pattern)
	}

	h, _, _ := rt.Resolve("home")
	h(nil, nil, nil)
	if hits[len(hits)-1] != "new" {
		t.Errorf("resolved handler = %q, want the replacement", hits[len(hits)-1])
	}
}

func TestResolveIsReadOnly(t *testing.T) {
	rt := New()
	rt.Register("agenda", func(w http.ResponseWriter, r *http.Request, p Params) {})

	for i := 0; i < 3; i++ {
		if _, _, ok := rt.Resolve("agenda"); !ok {
			t.Fatalf("resolve %d missed", i)
		}
	}
	if _, _, ok := rt.Resolve("nope"); ok {
		t.Error("unexpected match")
	}
	if _, _, ok := rt.Resolve("agenda"); !ok {
		t.Error("a failed resolve changed the table")
	}
}

func TestCurrentPath(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"/", Landing},
		{"/home", "home"},
		{"/home/", "home"},
		{"/challenges/edit/c1", "challenges/edit/c1"},
		{"/assignments/view/a%201", "assignments/view/a%201"},
	}
	for _, c := range cases {
		r := httptest.NewRequest(http.MethodGet, c.url, nil)
		if got := CurrentPath(r); got != c.want {
			t.Errorf("CurrentPath(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestServeHTTPMissRedirectsToLanding(t *testing.T) {
	rt := New()
	rt.Register("home", func(w http.ResponseWriter, r *http.Request, p Params) {})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/definitely/not/registered", nil)
	rt.ServeHTTP(w, r)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/"+Landing {
		t.Errorf("location = %q, want %q", loc, "/"+Landing)
	}
}

func TestNavigateHTMX(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.Header.Set("HX-Request", "true")

	Navigate(w, r, "home")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("HX-Redirect"); got != "/home" {
		t.Errorf("HX-Redirect = %q, want %q", got, "/home")
	}
}
