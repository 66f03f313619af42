package creditview

import (
	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/templates/el"
)

func selectField(label, name string, required bool, options ...templ.Component) templ.Component {
	attrs := el.Attrs{"class": "input", "name": name}
	if required {
		attrs["required"] = "required"
	}
	return el.El("div", el.Attrs{"class": "field"},
		el.El("label", nil, el.Text(label)),
		el.El("select", attrs, options...),
	)
}

// GiveForm is the admin grant form: team, recipient, category, amount and
// a reason.
func GiveForm(users []models.User) templ.Component {
	userOptions := el.Map(users, func(u models.User) templ.Component {
		return el.El("option", el.Attrs{"value": u.Id}, el.Textf("%s (%s)", u.Name, u.Role))
	})

	return el.El("div", el.Attrs{"class": "card"},
		el.El("h2", nil, el.Text("Give Credits")),
		el.El("div", el.Attrs{"class": "muted"}, el.Text("Grant credits to any user in the system.")),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("form", el.Attrs{"method": "post", "action": "/credits/give"},
			el.El("div", el.Attrs{"class": "grid-4-col"},
				selectField("Team", "team_select", false,
					el.El("option", el.Attrs{"value": ""}, el.Text("Select Team...")),
					el.El("option", el.Attrs{"value": "team1"}, el.Text("Team Alpha")),
					el.El("option", el.Attrs{"value": "team2"}, el.Text("Team Beta")),
				),
				selectField("User", "user_select", true, userOptions),
				selectField("Category", "category_select", false,
					el.El("option", el.Attrs{"value": ""}, el.Text("Select Category...")),
					el.El("option", el.Attrs{"value": "assignment"}, el.Text("Assignment")),
					el.El("option", el.Attrs{"value": "challenge"}, el.Text("Challenge")),
					el.El("option", el.Attrs{"value": "bonus"}, el.Text("Bonus")),
				),
				el.El("div", el.Attrs{"class": "field"},
					el.El("label", nil, el.Text("Amount")),
					el.El("input", el.Attrs{"type": "number", "class": "input", "name": "credits_amount", "placeholder": "e.g., 100", "required": "required", "min": "1"}),
				),
			),
			el.El("div", el.Attrs{"class": "field"},
				el.El("label", nil, el.Text("Reason")),
				el.El("textarea", el.Attrs{"class": "input", "name": "reason", "placeholder": "Reason for granting credits...", "required": "required"}),
			),
			el.El("div", el.Attrs{"class": "spacer"}),
			el.El("div", el.Attrs{"class": "row right"},
				el.El("button", el.Attrs{"class": "btn ok", "type": "submit"}, el.Text("Grant Credits")),
			),
		),
	)
}

// Actions is the back button for the give-credits page.
func Actions() templ.Component {
	return el.El("a", el.Attrs{"class": "btn ghost", "href": "/home"}, el.Text("Back"))
}
