// Package dashboard renders the three role dashboards. Which one a user
// gets is decided by the home handler from the session role.
package dashboard

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/database/models"
	"github.com/WatthikonJ/Dreamable/dto"
	"github.com/WatthikonJ/Dreamable/templates/components/creditview"
	"github.com/WatthikonJ/Dreamable/templates/el"
)

// LogoutButton posts to the logout route.
func LogoutButton() templ.Component {
	return el.El("form", el.Attrs{"method": "post", "action": "/logout", "style": "display:inline;"},
		el.El("button", el.Attrs{"class": "btn ghost", "type": "submit"}, el.Text("Log out")),
	)
}

func kpi(label, value string) templ.Component {
	return el.El("div", el.Attrs{"class": "kpi"},
		el.El("h3", nil, el.Text(label)),
		el.El("p", nil, el.Text(value)),
	)
}

func card(title, subtitle string, body ...templ.Component) templ.Component {
	children := []templ.Component{
		el.El("h2", nil, el.Text(title)),
		el.El("div", el.Attrs{"class": "muted"}, el.Text(subtitle)),
		el.El("div", el.Attrs{"class": "spacer"}),
	}
	children = append(children, body...)
	return el.El("div", el.Attrs{"class": "card"}, children...)
}

func homeCard(title, subtitle, href string) templ.Component {
	return el.El("a", el.Attrs{"class": "card home-card", "href": "/" + href},
		el.El("h2", nil, el.Text(title)),
		el.El("div", el.Attrs{"class": "muted"}, el.Text(subtitle)),
		el.El("div", el.Attrs{"class": "spacer"}),
		el.El("span", el.Attrs{"class": "btn primary"}, el.Text("Open")),
	)
}

func greeting(heading, sub string) templ.Component {
	return el.El("div", el.Attrs{"class": "row"},
		el.El("div", el.Attrs{"style": "flex: 1;"},
			el.El("h2", nil, el.Text(heading)),
			el.El("div", el.Attrs{"class": "muted"}, el.Text(sub)),
		),
	)
}

// Admin shows the platform KPIs and cards into the four admin areas.
func Admin(name string, agendaCount, submissionCount, assignmentCount, totalGranted int) templ.Component {
	kpis := el.El("div", el.Attrs{"class": "kpis"},
		kpi("Agenda Items", strconv.Itoa(agendaCount)),
		kpi("Submissions", strconv.Itoa(submissionCount)),
		kpi("Assignments", strconv.Itoa(assignmentCount)),
		kpi("Credits", "Ξ "+strconv.Itoa(totalGranted)),
	)

	return el.Group(
		greeting("Hello, Admin "+name+"!", "Your DRE Admin Dashboard"),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		kpis,
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("div", el.Attrs{"class": "grid"},
			homeCard("Agenda", "View program agenda", "agenda"),
			homeCard("Challenges", "Create, edit and manage challenges", "challenges/manage"),
			homeCard("Manage Assignments", "Create and edit assignments", "assignments/manage"),
			homeCard("Give Credits", "Grant credits to users", "credits/give"),
		),
	)
}

// Mentor lists submissions to review next to the grant-credits form.
func Mentor(name string, subs []dto.Submission, users []models.User, balance int) templ.Component {
	submissionsList := el.El("div", el.Attrs{"class": "list"},
		el.Map(subs, func(s dto.Submission) templ.Component {
			return el.El("div", el.Attrs{"class": "list-item"},
				el.El("div", el.Attrs{"class": "ticket"},
					el.El("div", el.Attrs{"class": "title"}, el.Text(s.Team)),
					el.El("div", el.Attrs{"class": "meta"}, el.Textf("Challenge: %s | Submitted by: %s", s.Challenge, s.By)),
				),
				el.El("a", el.Attrs{"class": "btn info", "href": "/assignments/view/" + s.Id}, el.Text("View File")),
			)
		}),
	)

	return el.Group(
		greeting("Hello, Mentor "+name+"!", "Review pending submissions"),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("div", el.Attrs{"class": "grid"},
			card("Submissions to Review", "List of all submitted challenges",
				el.El("div", el.Attrs{"class": "card-content-scroll"}, submissionsList),
			),
			card("My Balance", "You can redeem your credits for rewards.",
				el.El("p", nil, el.Textf("Ξ %d", balance)),
				el.El("div", el.Attrs{"class": "row right"},
					el.El("form", el.Attrs{"method": "post", "action": "/redeem"},
						el.El("input", el.Attrs{"type": "hidden", "name": "item", "value": "coffee"}),
						el.El("button", el.Attrs{"class": "btn primary", "type": "submit"}, el.Text("Redeem")),
					),
				),
			),
		),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		creditview.GiveForm(users),
	)
}

// Student shows KPIs, open work and the redeem card with history.
func Student(name string, assignments []dto.Assignment, challenges []dto.Challenge, balance int, redeems []models.Redemption) templ.Component {
	kpis := el.El("div", el.Attrs{"class": "kpis"},
		kpi("My Credits", "Ξ "+strconv.Itoa(balance)),
		kpi("Assignments Left", strconv.Itoa(len(assignments))),
		kpi("Challenges Left", strconv.Itoa(len(challenges))),
	)

	assignmentsList := el.El("div", el.Attrs{"class": "list"},
		el.Map(assignments, func(a dto.Assignment) templ.Component {
			return el.El("div", el.Attrs{"class": "list-item"},
				el.El("div", el.Attrs{"class": "ticket"},
					el.El("div", el.Attrs{"class": "title"}, el.Text(a.Title)),
					el.El("div", el.Attrs{"class": "meta"}, el.Textf("By: %s | Deadline: %s", a.Mentor, a.Deadline)),
				),
				el.El("div", el.Attrs{"class": "pill info"}, el.Textf("+%d Credits", a.Credits)),
			)
		}),
	)

	challengesList := el.El("div", el.Attrs{"class": "list"},
		el.Map(challenges, func(c dto.Challenge) templ.Component {
			return el.El("div", el.Attrs{"class": "list-item"},
				el.El("div", el.Attrs{"class": "ticket"},
					el.El("div", el.Attrs{"class": "title"}, el.Text(c.Title)),
					el.El("div", el.Attrs{"class": "meta"}, el.Textf("Deadline: %s", c.Deadline)),
				),
				el.El("div", el.Attrs{"class": "pill info"}, el.Textf("+%d Credits", c.Credits)),
			)
		}),
	)

	history := el.El("table", el.Attrs{"class": "table"},
		el.El("thead", nil,
			el.El("tr", nil,
				el.El("th", nil, el.Text("ID")),
				el.El("th", nil, el.Text("Item")),
				el.El("th", nil, el.Text("Date")),
			),
		),
		el.El("tbody", nil,
			el.Map(redeems, func(r models.Redemption) templ.Component {
				return el.El("tr", nil,
					el.El("td", nil, el.Text(r.Id)),
					el.El("td", nil, el.Text(r.Item)),
					el.El("td", nil, el.Text(r.Date)),
				)
			}),
		),
	)

	redeemCard := card("Redeem Credits", "Redeem your credits for rewards.",
		el.El("form", el.Attrs{"method": "post", "action": "/redeem", "class": "row"},
			el.El("div", el.Attrs{"style": "flex: 1;"},
				el.El("label", nil, el.Text("Choose Item")),
				el.El("select", el.Attrs{"class": "input", "name": "item"},
					el.El("option", el.Attrs{"value": ""}, el.Text("Select a reward...")),
					el.El("option", el.Attrs{"value": "coffee"}, el.Text("Coffee (10 Credits)")),
					el.El("option", el.Attrs{"value": "ticket"}, el.Text("Movie Ticket (50 Credits)")),
				),
			),
			el.El("div", el.Attrs{"style": "display: flex; align-items: flex-end;"},
				el.El("button", el.Attrs{"class": "btn ok", "type": "submit"}, el.Text("Redeem")),
			),
		),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("h3", nil, el.Text("History")),
		el.El("div", el.Attrs{"class": "spacer"}),
		history,
	)

	return el.Group(
		greeting("Hello, "+name+"!", "Your DRE Dashboard"),
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		kpis,
		el.El("div", el.Attrs{"class": "spacer-lg"}),
		el.El("div", el.Attrs{"class": "grid"},
			card("Assignments", "Tasks assigned by mentors",
				el.El("div", el.Attrs{"class": "card-content-scroll"}, assignmentsList),
			),
			card("Challenges", "Team-based challenges",
				el.El("div", el.Attrs{"class": "card-content-scroll"}, challengesList),
			),
			redeemCard,
		),
	)
}
