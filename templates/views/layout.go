package views

import (
	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/templates/el"
)

// Layout is the full HTML document shell around a rendered page.
func Layout(content templ.Component) templ.Component {
	return el.Group(
		templ.Raw("<!DOCTYPE html>"),
		el.El("html", el.Attrs{"lang": "en"},
			el.El("head", nil,
				el.El("meta", el.Attrs{"charset": "utf-8"}),
				el.El("meta", el.Attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
				el.El("title", nil, el.Text("VISIONARY - DRE Platform")),
				el.El("link", el.Attrs{"rel": "stylesheet", "href": "/static/styles.css"}),
				el.El("script", el.Attrs{"src": "https://unpkg.com/htmx.org@1.9.10", "defer": "defer"}),
			),
			el.El("body", nil, el.El("div", el.Attrs{"id": "app"}, content)),
		),
	)
}

// Shell is the in-app chrome: brand bar with the page title, nav actions,
// then the page content.
func Shell(title string, actions templ.Component, content templ.Component) templ.Component {
	var small templ.Component
	if title != "" {
		small = el.El("small", nil, el.Textf(" / %s", title))
	}

	nav := el.El("div", el.Attrs{"class": "nav"},
		el.El("div", el.Attrs{"class": "brand"},
			el.El("span", el.Attrs{"class": "brand-logo"}, el.Text("V")),
			el.El("div", nil, el.Text("VISIONARY "), small),
		),
		el.El("div", el.Attrs{"class": "nav-actions"}, actions),
	)

	return el.El("div", el.Attrs{"class": "container"}, nav, content)
}
