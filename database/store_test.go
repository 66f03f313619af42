package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WatthikonJ/Dreamable/database/models"
)

// testStore opens a store on a fresh temp DB with the fallback roster
// installed.
func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dre.db")
	s, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	SetUsers(s, FallbackRoster())
	return s, path
}

func TestInitSeedsDefaults(t *testing.T) {
	s, _ := testStore(t)

	require.Len(t, Agenda(s), 2)
	require.Len(t, Challenges(s), 2)
	require.Len(t, Assignments(s), 2)
	require.Len(t, Submissions(s), 3)
	require.Empty(t, Redemptions(s))

	credits := Credits(s)
	require.Equal(t, 1200, credits.Admin.TotalGranted)
	require.Equal(t, 200, credits.Mentor.Balance)
	require.Equal(t, 120, credits.Student.Balance)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, _ := testStore(t)

	in := []models.AgendaItem{{Id: "x1", Date: "2025-10-01", Title: "Demo Day", Time: "09:00", Room: "Hall", Status: "Scheduled"}}
	require.NoError(t, SaveSnapshot(s, KeyAgenda, in))

	out, ok, err := LoadSnapshot[[]models.AgendaItem](s, KeyAgenda)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, out)
}

func TestLoadSnapshotMissingKey(t *testing.T) {
	s, _ := testStore(t)

	_, ok, err := LoadSnapshot[[]models.AgendaItem](s, "never-written")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMutationSurvivesReopen(t *testing.T) {
	s, path := testStore(t)

	created, err := CreateChallenge(s, "API Design", "Design a REST API.", 60, "2025-10-15")
	require.NoError(t, err)
	s.Close()

	s2, err := Init(path)
	require.NoError(t, err)
	defer s2.Close()

	got, found := GetChallenge(s2, created.Id)
	require.True(t, found)
	require.Equal(t, "API Design", got.Title)
	require.Equal(t, 60, got.Credits)
	require.Len(t, Challenges(s2), 3)
}

func TestUpdateChallenge(t *testing.T) {
	s, _ := testStore(t)

	require.NoError(t, UpdateChallenge(s, "c1", "Renamed", "New description.", 99, "2025-12-01"))

	got, found := GetChallenge(s, "c1")
	require.True(t, found)
	require.Equal(t, "Renamed", got.Title)
	require.Equal(t, 99, got.Credits)

	require.Error(t, UpdateChallenge(s, "missing", "x", "y", 1, "2025-12-01"))
}

func TestDeleteChallengeRemovesExactlyOne(t *testing.T) {
	s, path := testStore(t)

	require.NoError(t, DeleteChallenge(s, "c1"))

	left := Challenges(s)
	require.Len(t, left, 1)
	require.Equal(t, "c2", left[0].Id)

	s.Close()
	s2, err := Init(path)
	require.NoError(t, err)
	defer s2.Close()
	require.Len(t, Challenges(s2), 1)
}

func TestDeleteAssignment(t *testing.T) {
	s, _ := testStore(t)

	require.NoError(t, DeleteAssignment(s, "a2"))
	left := Assignments(s)
	require.Len(t, left, 1)
	require.Equal(t, "a1", left[0].Id)
}

func TestGradeSubmissionCreditsAuthorByName(t *testing.T) {
	s, _ := testStore(t)
	SetUsers(s, []models.User{
		{Id: "u1", Role: models.RoleStudent, Email: "alice@example.com", Password: "pw", Name: "Alice"},
	})

	before := Credits(s).Student.Balance
	require.NoError(t, GradeSubmission(s, "s1", 90))

	got, found := GetSubmission(s, "s1")
	require.True(t, found)
	require.Equal(t, models.StatusGraded, got.Status)
	require.NotNil(t, got.Grade)
	require.Equal(t, 90, *got.Grade)
	require.Equal(t, before+90, Credits(s).Student.Balance)
}

func TestGradeSubmissionUnknownAuthorSkipsCredit(t *testing.T) {
	s, _ := testStore(t)

	before := Credits(s)
	require.NoError(t, GradeSubmission(s, "s3", 70))

	got, found := GetSubmission(s, "s3")
	require.True(t, found)
	require.Equal(t, models.StatusGraded, got.Status)
	require.Equal(t, 70, *got.Grade)
	// "Charlie" is not in the roster: the grade lands but nothing is credited
	require.Equal(t, before, Credits(s))
}

func TestGradeSubmissionUnknownId(t *testing.T) {
	s, _ := testStore(t)
	require.Error(t, GradeSubmission(s, "nope", 50))
}

func TestGrantCredits(t *testing.T) {
	s, _ := testStore(t)

	before := Credits(s)
	user, err := GrantCredits(s, "student-01", 40, "challenge winner")
	require.NoError(t, err)
	require.Equal(t, "Student User", user.Name)

	after := Credits(s)
	require.Equal(t, before.Student.Balance+40, after.Student.Balance)
	require.Equal(t, before.Admin.TotalGranted+40, after.Admin.TotalGranted)

	_, err = GrantCredits(s, "ghost", 10, "nobody")
	require.Error(t, err)
}

func TestAddRedemptionIsAppendOnly(t *testing.T) {
	s, path := testStore(t)

	before := Credits(s).Student.Balance
	r, err := AddRedemption(s, "coffee")
	require.NoError(t, err)
	require.Equal(t, "coffee", r.Item)
	require.NotEmpty(t, r.Date)

	// redeeming is a log entry only, no balance is deducted
	require.Equal(t, before, Credits(s).Student.Balance)

	s.Close()
	s2, err := Init(path)
	require.NoError(t, err)
	defer s2.Close()

	redeems := Redemptions(s2)
	require.Len(t, redeems, 1)
	require.Equal(t, "coffee", redeems[0].Item)
}

func TestAttachFile(t *testing.T) {
	s, _ := testStore(t)

	require.NoError(t, AttachFile(s, "s2", models.SubmissionFile{Name: "notes.md", Size: "0.4KB"}))

	got, found := GetSubmission(s, "s2")
	require.True(t, found)
	require.Len(t, got.Files, 3)
	require.Equal(t, "notes.md", got.Files[2].Name)

	require.Error(t, AttachFile(s, "nope", models.SubmissionFile{Name: "x", Size: "1KB"}))
}
