package router

import (
	"net/http"
	"net/url"
	"strings"
)

// Landing is the default path: empty paths and resolution misses both end
// up here.
const Landing = "login"

// Params holds the values captured by :name pattern segments.
type Params map[string]string

// Handler runs for a resolved path. Handlers read and mutate the store and
// finish by rendering or navigating; they never return errors upward.
type Handler func(w http.ResponseWriter, r *http.Request, p Params)

type route struct {
	pattern  string
	segments []string
	handler  Handler
}

// Router maps registered path patterns to handlers. Patterns are
// "/"-delimited; a segment starting with ":" captures, everything else
// matches literally. No wildcards, no optionals, no ranking: patterns are
// tried in registration order and the first structural match wins.
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

// Register associates pattern with handler. Registering the same pattern
// twice overwrites the earlier handler in place, so the pattern keeps its
// original position in the trial order.
func (rt *Router) Register(pattern string, h Handler) {
	for i := range rt.routes {
		if rt.routes[i].pattern == pattern {
			rt.routes[i].handler = h
			return
		}
	}
	rt.routes = append(rt.routes, route{
		pattern:  pattern,
		segments: strings.Split(pattern, "/"),
		handler:  h,
	})
}

// Resolve matches path against the registered patterns. A pattern
// qualifies when its segment count equals the path's and every literal
// segment matches exactly; capture segments always match and bind the
// percent-decoded value. A segment count mismatch disqualifies outright,
// there is no prefix matching.
func (rt *Router) Resolve(path string) (Handler, Params, bool) {
	parts := strings.Split(path, "/")

	for _, rte := range rt.routes {
		if len(rte.segments) != len(parts) {
			continue
		}
		params := Params{}
		matched := true
		for i, seg := range rte.segments {
			if strings.HasPrefix(seg, ":") {
				v, err := url.PathUnescape(parts[i])
				if err != nil {
					v = parts[i]
				}
				params[seg[1:]] = v
				continue
			}
			if seg != parts[i] {
				matched = false
				break
			}
		}
		if matched {
			return rte.handler, params, true
		}
	}
	return nil, nil, false
}

// CurrentPath derives the logical path from the request URL. The escaped
// form is kept so Resolve decodes captures exactly once. An empty path
// means the landing page.
func CurrentPath(r *http.Request) string {
	path := strings.Trim(r.URL.EscapedPath(), "/")
	if path == "" {
		return Landing
	}
	return path
}

// ServeHTTP resolves and dispatches. A miss is not an error page: the
// client is sent back to the landing path.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, params, ok := rt.Resolve(CurrentPath(r))
	if !ok {
		Navigate(w, r, Landing)
		return
	}
	h(w, r, params)
}

// Navigate requests a transition to path. It only instructs the client
// (HX-Redirect for HTMX, 302 otherwise); the handler for path runs on the
// follow-up request, never in the same step.
func Navigate(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/"+path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/"+path, http.StatusFound)
}
