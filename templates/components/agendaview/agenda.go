package agendaview

import (
	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/templates/el"
)

// List renders the program agenda. Reference data: there is no edit flow,
// and "New Agenda" is still a stub.
func List(items []models.AgendaItem) templ.Component {
	rows := el.El("div", el.Attrs{"class": "list"},
		el.Map(items, func(item models.AgendaItem) templ.Component {
			return el.El("div", el.Attrs{"class": "list-item"},
				el.El("div", el.Attrs{"class": "ticket"},
					el.El("div", el.Attrs{"class": "title"}, el.Textf("%s • %s", item.Title, item.Time)),
					el.El("div", el.Attrs{"class": "meta"}, el.Textf("%s • %s", item.Date, item.Room)),
				),
				el.El("div", el.Attrs{"class": "pill ok"}, el.Text(item.Status)),
			)
		}),
	)

	return el.Group(
		el.El("div", el.Attrs{"class": "row"},
			el.El("div", el.Attrs{"style": "flex: 1;"}, el.El("h2", nil, el.Text("Agenda"))),
		),
		el.El("div", el.Attrs{"class": "spacer"}),
		rows,
	)
}

// Actions are the nav buttons for the agenda page.
func Actions() templ.Component {
	return el.Group(
		el.El("a", el.Attrs{"class": "btn ghost", "href": "/home"}, el.Text("Back")),
		el.El("button", el.Attrs{"class": "btn primary", "disabled": "disabled", "title": "Demo only"}, el.Text("New Agenda")),
	)
}
