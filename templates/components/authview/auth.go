package authview

import (
	"github.com/a-h/templ"

	"github.com/WatthikonJ/Dreamable/templates/el"
)

func field(label string, attrs el.Attrs) templ.Component {
	return el.El("div", el.Attrs{"class": "field"},
		el.El("label", nil, el.Text(label)),
		el.El("input", attrs),
	)
}

func brand() templ.Component {
	return el.El("div", el.Attrs{"class": "brand"},
		el.El("span", el.Attrs{"class": "brand-logo"}, el.Text("V")),
		el.El("h1", nil, el.Text("VISIONARY")),
	)
}

// Login is the landing page: email/password against the mock roster.
func Login() templ.Component {
	return el.El("div", el.Attrs{"class": "login-container"},
		el.El("div", el.Attrs{"class": "card login-card"},
			brand(),
			el.El("h2", nil, el.Text("Welcome Back!")),
			el.El("p", el.Attrs{"class": "muted"}, el.Text("Please login to your account")),
			el.El("div", el.Attrs{"class": "spacer"}),
			el.El("form", el.Attrs{"method": "post", "action": "/login"},
				field("Email", el.Attrs{"type": "email", "name": "email", "class": "input", "placeholder": "your@email.com", "required": "required"}),
				field("Password", el.Attrs{"type": "password", "name": "password", "class": "input", "placeholder": "********", "required": "required"}),
				el.El("div", el.Attrs{"class": "spacer"}),
				el.El("button", el.Attrs{"class": "btn primary", "type": "submit"}, el.Text("Log In")),
				el.El("div", el.Attrs{"class": "spacer-lg"}),
				el.El("div", el.Attrs{"class": "muted", "style": "text-align: center;"},
					el.El("span", nil, el.Text("Don't have an account?")),
					el.El("a", el.Attrs{"href": "/signup", "style": "margin-left: 5px;"}, el.Text("Sign Up here")),
				),
			),
		),
	)
}

// Signup registers a new student account.
func Signup() templ.Component {
	return el.El("div", el.Attrs{"class": "login-container"},
		el.El("div", el.Attrs{"class": "card login-card"},
			brand(),
			el.El("h2", nil, el.Text("Create Your Account")),
			el.El("p", el.Attrs{"class": "muted"}, el.Text("Join us in the DRE Platform!")),
			el.El("div", el.Attrs{"class": "spacer"}),
			el.El("form", el.Attrs{"method": "post", "action": "/signup"},
				field("Your Name", el.Attrs{"type": "text", "name": "name", "class": "input", "placeholder": "John Doe", "required": "required"}),
				field("Email", el.Attrs{"type": "email", "name": "email", "class": "input", "placeholder": "your@email.com", "required": "required"}),
				field("Password", el.Attrs{"type": "password", "name": "password", "class": "input", "placeholder": "********", "required": "required"}),
				el.El("div", el.Attrs{"class": "spacer"}),
				el.El("button", el.Attrs{"class": "btn primary", "type": "submit"}, el.Text("Sign Up")),
				el.El("div", el.Attrs{"class": "spacer-lg"}),
				el.El("div", el.Attrs{"class": "muted", "style": "text-align: center;"},
					el.El("span", nil, el.Text("Already have an account?")),
					el.El("a", el.Attrs{"href": "/login", "style": "margin-left: 5px;"}, el.Text("Log In here")),
				),
			),
		),
	)
}
