// Package modal renders transient overlay notices. Failures surface here,
// never as a full-page error state.
package modal

import (
	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/templates/el"
)

// Notice is a dismissable overlay with a title and message.
func Notice(title, message string) templ.Component {
	return el.El("div", el.Attrs{"class": "modal-backdrop show"},
		el.El("div", el.Attrs{"class": "modal"},
			el.El("h2", nil, el.Text(title)),
			el.El("p", nil, el.Text(message)),
			el.El("div", el.Attrs{"class": "spacer"}),
			el.El("button", el.Attrs{"class": "btn primary", "onclick": "this.closest('.modal-backdrop').remove()"}, el.Text("OK")),
		),
	)
}
