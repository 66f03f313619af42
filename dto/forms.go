package dto

// Form DTOs bound from request values. The form tag doubles as the input
// name and the field name in validation messages.

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type SignupForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ChallengeForm covers create and edit; credits are a non-negative reward.
type ChallengeForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Credits     int    `form:"points" validate:"gte=0"`
	Deadline    string `form:"due_date" validate:"required"`
}

type AssignmentForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Credits     int    `form:"points" validate:"gte=0"`
	Deadline    string `form:"due_date" validate:"required"`
}

type GradeForm struct {
	Grade int `form:"grade" validate:"gte=0,lte=100"`
}

type GrantForm struct {
	Team     string `form:"team_select"`
	UserId   string `form:"user_select" validate:"required"`
	Category string `form:"category_select"`
	Amount   int    `form:"credits_amount" validate:"gte=1"`
	Reason   string `form:"reason" validate:"required"`
}

type RedeemForm struct {
	Item string `form:"item" validate:"required"`
}
