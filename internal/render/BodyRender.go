package render

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/templates/views"
)

// RenderWithLayout writes content as a bare fragment for HTMX requests and
// as a full document otherwise. Wrappers apply in order before the layout.
// Store state is always consistent by the time this runs: mutations
// persist before their handler renders.
func RenderWithLayout(
	w http.ResponseWriter,
	r *http.Request,
	content templ.Component,
	wrappers ...func(templ.Component) templ.Component,
) {
	if r.Header.Get("HX-Request") == "true" {
		content.Render(r.Context(), w)
		return
	}

	wrapped := content
	for _, wrap := range wrappers {
		wrapped = wrap(wrapped)
	}

	views.Layout(wrapped).Render(r.Context(), w)
}
