package assignmentview

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/templates/el"
)

// Manage lists assignments with edit/delete actions plus the submissions
// table underneath.
func Manage(assignments []dto.Assignment, submissions []dto.Submission) templ.Component {
	list := el.El("div", el.Attrs{"class": "list"},
		el.Map(assignments, func(a dto.Assignment) templ.Component {
			return el.El("div", el.Attrs{"class": "list-item"},
				el.El("div", el.Attrs{"class": "ticket"},
					el.El("div", el.Attrs{"class": "title"}, el.Text(a.Title)),
					el.El("div", el.Attrs{"class": "meta"}, el.Textf("Due %s • %d credits", a.Deadline, a.Credits)),
				),
				el.El("div", el.Attrs{"class": "list-actions"},
					el.El("a", el.Attrs{"class": "btn ghost", "href": "/assignments/edit/" + a.Id}, el.Text("Edit")),
					el.El("form", el.Attrs{"method": "post", "action": "/assignments/manage", "style": "display:inline;", "onsubmit": fmt.Sprintf("return confirm('Delete %q?')", a.Title)},
						el.El("input", el.Attrs{"type": "hidden", "name": "action", "value": "delete"}),
						el.El("input", el.Attrs{"type": "hidden", "name": "id", "value": a.Id}),
						el.El("button", el.Attrs{"class": "btn ghost", "type": "submit"}, el.Text("...")),
					),
				),
			)
		}),
	)

	table := el.El("table", el.Attrs{"class": "table"},
		el.El("thead", nil,
			el.El("tr", nil,
				el.El("th", nil, el.Text("Team")),
				el.El("th", nil, el.Text("Assignment")),
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
					el.El("td", nil, el.Text(s.Assignment)),
					el.El("td", nil, el.Text(s.By)),
					el.El("td", nil, el.Text(s.At)),
					el.El("td", nil, el.El("div", el.Attrs{"class": "pill " + s.StatusTone}, el.Text(s.Status))),
					el.El("td", el.Attrs{"style": "text-align: right;"},
						el.El("a", el.Attrs{"class": "btn ghost", "href": "/assignments/view/" + s.Id}, el.Text("View")),
					),
				)
			}),
		),
	)

	return el.Group(
		el.El("div", el.Attrs{"class": "row"},
			el.El("div", el.Attrs{"style": "flex: 1;"},
				el.El("h2", nil, el.Text("Manage Assignments")),
				el.El("div", el.Attrs{"class": "muted"}, el.Text("Create and manage assignments")),
			),
		),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("div", el.Attrs{"class": "card"},
			el.El("h2", nil, el.Text("Assignments List")),
			el.El("div", el.Attrs{"class": "spacer"}),
			list,
		),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("h2", nil, el.Text("Assignment Submissions")),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("div", el.Attrs{"class": "card"},
			el.El("div", el.Attrs{"class": "card-content-scroll"}, table),
		),
	)
}

func ManageActions() templ.Component {
	return el.Group(
		el.El("a", el.Attrs{"class": "btn ghost", "href": "/home"}, el.Text("Back")),
		el.El("a", el.Attrs{"class": "btn primary", "href": "/assignments/create"}, el.Text("Add New Assignment")),
	)
}

// Form renders the create form when a is nil, the edit form otherwise.
func Form(a *dto.Assignment) templ.Component {
	heading := "Create Assignment"
	action := "/assignments/create"
	submit := "Create Assignment"
	var title, deadline, credits, description string
	if a != nil {
		heading = "Edit Assignment"
		action = "/assignments/edit/" + a.Id
		submit = "Update Assignment"
		title = a.Title
		deadline = a.Deadline
		credits = strconv.Itoa(a.Credits)
		description = a.Description
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
				el.El("label", nil, el.Text("Credits *")),
				el.El("input", el.Attrs{"type": "number", "name": "points", "class": "input", "required": "required", "min": "0", "value": credits}),
			),
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Description")),
				el.El("textarea", el.Attrs{"name": "description", "class": "input", "placeholder": "Assignment description...", "required": "required"}, el.Text(description)),
			),
			el.El("div", el.Attrs{"class": "spacer"}),
			el.El("div", el.Attrs{"class": "row right"},
				el.El("a", el.Attrs{"class": "btn ghost", "href": "/assignments/manage"}, el.Text("Cancel")),
				el.El("button", el.Attrs{"class": "btn primary", "type": "submit"}, el.Text(submit)),
			),
		),
	)
}

func FormActions() templ.Component {
	return el.El("a", el.Attrs{"class": "btn ghost", "href": "/assignments/manage"}, el.Text("Back"))
}

// SubmissionDetail shows a submission's files and the grading form.
func SubmissionDetail(s dto.Submission) templ.Component {
	files := el.El("ul", el.Attrs{"class": "file-list"},
		el.Map(s.Files, func(f models.SubmissionFile) templ.Component {
			return el.El("li", nil,
				el.El("span", nil, el.Text(f.Name)),
				el.El("span", el.Attrs{"class": "muted"}, el.Textf(" (%s)", f.Size)),
			)
		}),
	)

	return el.El("div", el.Attrs{"class": "card"},
		el.El("h2", nil, el.Textf("Submission for %q", s.Assignment)),
		el.El("div", el.Attrs{"class": "muted"}, el.Textf("Submitted by %s (%s)", s.By, s.Team)),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("h3", nil, el.Text("Attached Files")),
		el.El("div", el.Attrs{"class": "spacer-sm"}),
		files,
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("form", el.Attrs{"method": "post", "action": "/assignments/view/" + s.Id, "enctype": "multipart/form-data", "class": "row"},
			el.El("input", el.Attrs{"type": "hidden", "name": "action", "value": "upload"}),
			el.El("input", el.Attrs{"type": "file", "name": "file", "class": "input", "required": "required"}),
			el.El("button", el.Attrs{"class": "btn ghost", "type": "submit"}, el.Text("Attach File")),
		),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("h3", nil, el.Text("Grade Submission")),
		el.El("div", el.Attrs{"class": "spacer-sm"}),
		el.El("form", el.Attrs{"method": "post", "action": "/assignments/view/" + s.Id},
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Score")),
				el.El("input", el.Attrs{"type": "number", "name": "grade", "class": "input", "required": "required", "min": "0", "max": "100", "value": s.GradeText}),
			),
			el.El("div", el.Attrs{"class": "row right"},
				el.El("button", el.Attrs{"class": "btn ok", "type": "submit"}, el.Text("Submit Grade")),
			),
		),
	)
}
