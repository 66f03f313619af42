package challengeview

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/templates/el"
)

// Manage lists challenges with edit/delete actions plus the submissions
// table underneath.
func Manage(challenges []dto.Challenge, submissions []dto.Submission) templ.Component {
	list := el.El("div", el.Attrs{"class": "list"},
		el.Map(challenges, func(c dto.Challenge) templ.Component {
			return el.El("div", el.Attrs{"class": "list-item"},
				el.El("div", el.Attrs{"class": "ticket"},
					el.El("div", el.Attrs{"class": "title"}, el.Text(c.Title)),
					el.El("div", el.Attrs{"class": "meta"}, el.Textf("Due %s • %d points", c.Deadline, c.Credits)),
				),
				el.El("div", el.Attrs{"class": "list-actions"},
					el.El("a", el.Attrs{"class": "btn ghost", "href": "/challenges/edit/" + c.Id}, el.Text("Edit")),
					el.El("form", el.Attrs{"method": "post", "action": "/challenges/manage", "style": "display:inline;", "onsubmit": fmt.Sprintf("return confirm('Delete %q?')", c.Title)},
						el.El("input", el.Attrs{"type": "hidden", "name": "action", "value": "delete"}),
						el.El("input", el.Attrs{"type": "hidden", "name": "id", "value": c.Id}),
						el.El("button", el.Attrs{"class": "btn ghost", "type": "submit"}, el.Text("...")),
					),
				),
			)
		}),
	)

	table := submissionsTable("Challenge", submissions, func(s dto.Submission) string { return s.Challenge })

	return el.Group(
		el.El("div", el.Attrs{"class": "row"},
			el.El("div", el.Attrs{"style": "flex: 1;"},
				el.El("h2", nil, el.Text("Challenges")),
				el.El("div", el.Attrs{"class": "muted"}, el.Text("Create and manage challenges")),
			),
		),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("div", el.Attrs{"class": "card"},
			el.El("h2", nil, el.Text("Challenges List")),
			el.El("div", el.Attrs{"class": "spacer"}),
			list,
		),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("h2", nil, el.Text("Challenge Submissions")),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("div", el.Attrs{"class": "card"},
			el.El("div", el.Attrs{"class": "card-content-scroll"}, table),
		),
	)
}

// ManageActions are the nav buttons for the manage page.
func ManageActions() templ.Component {
	return el.Group(
		el.El("a", el.Attrs{"class": "btn ghost", "href": "/home"}, el.Text("Back")),
		el.El("a", el.Attrs{"class": "btn primary", "href": "/challenges/create"}, el.Text("Add New Challenge")),
	)
}

// Form renders the create form when c is nil, the edit form otherwise.
func Form(c *dto.Challenge) templ.Component {
	heading := "Create Challenge"
	action := "/challenges/create"
	submit := "Create Challenge"
	var title, deadline, credits, description string
	if c != nil {
		heading = "Edit Challenge"
		action = "/challenges/edit/" + c.Id
		submit = "Update Challenge"
		title = c.Title
		deadline = c.Deadline
		credits = strconv.Itoa(c.Credits)
		description = c.Description
	}

	return el.El("div", el.Attrs{"class": "card"},
		el.El("h2", nil, el.Text(heading)),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("form", el.Attrs{"method": "post", "action": action},
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Title *")),
				el.El("input", el.Attrs{"type": "text", "name": "title", "class": "input", "required": "required", "value": title}),
			),
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Due Date *")),
				el.El("input", el.Attrs{"type": "date", "name": "due_date", "class": "input", "required": "required", "value": deadline}),
			),
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Points *")),
				el.El("input", el.Attrs{"type": "number", "name": "points", "class": "input", "required": "required", "min": "0", "value": credits}),
			),
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Description")),
				el.El("textarea", el.Attrs{"name": "description", "class": "input", "placeholder": "Challenge description...", "required": "required"}, el.Text(description)),
			),
			el.El("div", el.Attrs{"class": "spacer"}),
			el.El("div", el.Attrs{"class": "row right"},
				el.El("a", el.Attrs{"class": "btn ghost", "href": "/challenges/manage"}, el.Text("Cancel")),
				el.El("button", el.Attrs{"class": "btn primary", "type": "submit"}, el.Text(submit)),
			),
		),
	)
}

// FormActions is the back button shared by create and edit.
func FormActions() templ.Component {
	return el.El("a", el.Attrs{"class": "btn ghost", "href": "/challenges/manage"}, el.Text("Back"))
}

func submissionsTable(secondCol string, submissions []dto.Submission, second func(dto.Submission) string) templ.Component {
	return el.El("table", el.Attrs{"class": "table"},
		el.El("thead", nil,
			el.El("tr", nil,
				el.El("th", nil, el.Text("Team")),
				el.El("th", nil, el.Text(secondCol)),
				el.El("th", nil, el.Text("By")),
				el.El("th", nil, el.Text("Submitted At")),
				el.El("th", nil, el.Text("Status")),
				el.El("th", nil, el.Text("Actions")),
			),
		),
		el.El("tbody", nil,
			el.Map(submissions, func(s dto.Submission) templ.Component {
				return el.El("tr", nil,
					el.El("td", nil, el.Text(s.Team)),
					el.El("td", nil, el.Text(second(s))),
					el.El("td", nil, el.Text(s.By)),
					el.El("td", nil, el.Text(s.At)),
					el.El("td", nil, el.El("div", el.Attrs{"class": "pill " + s.StatusTone}, el.Text(s.Status))),
					el.El("td", el.Attrs{"style": "text-align: right;"},
						el.El("a", el.Attrs{"class": "btn ghost", "href": "/assignments/view/" + s.Id}, el.Text("Open")),
					),
				)
			}),
		),
	)
}
