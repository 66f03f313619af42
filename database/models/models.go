package models

// Roles known to the platform.
const (
	RoleAdmin   = "admin"
	RoleMentor  = "mentor"
	RoleStudent = "student"
)

// Submission statuses.
const (
	StatusSubmitted = "Submitted"
	StatusPending   = "Pending"
	StatusGraded    = "Graded"
)

type User struct {
	Id       string `json:"id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AgendaItem struct {
	Id     string `json:"id"`
	Date   string `json:"date"` // "2006-01-02"
	Title  string `json:"title"`
	Time   string `json:"time"`
	Room   string `json:"room"`
	Status string `json:"status"`
}

type Challenge struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Deadline    string `json:"deadline"` // "2006-01-02"
}

type Assignment struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Mentor      string `json:"mentor"` // display name of the authoring mentor
	Deadline    string `json:"deadline"`
	Credits     int    `json:"credits"`
}

type SubmissionFile struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

type Submission struct {
	Id         string           `json:"id"`
	Team       string           `json:"team"`
	Assignment string           `json:"assignment"`
	Challenge  string           `json:"challenge"`
	By         string           `json:"by"` // author display name, see database.GradeSubmission
	At         string           `json:"at"`
	Status     string           `json:"status"`
	Grade      *int             `json:"grade"` // nil until Status is Graded
	Files      []SubmissionFile `json:"files"`
}

type Redemption struct {
	Id   string `json:"id"`
	Item string `json:"item"`
	Date string `json:"date"`
}

// CreditLedger keeps one aggregate bucket per role. The admin counter only
// ever grows; it tracks everything granted, not a spendable balance.
type CreditLedger struct {
	Admin   AdminCredits   `json:"admin"`
	Mentor  MentorCredits  `json:"mentor"`
	Student StudentCredits `json:"student"`
}

type AdminCredits struct {
	TotalGranted int `json:"totalGranted"`
}

type MentorCredits struct {
	Balance int `json:"balance"`
}

type StudentCredits struct {
	Balance int `json:"balance"`
}
