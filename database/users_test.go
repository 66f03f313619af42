package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WatthikonJ/Dreamable/database/models"
)

func TestAuthenticate(t *testing.T) {
	s, _ := testStore(t)

	u, err := Authenticate(s, "student@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, "student-01", u.Id)
	require.Equal(t, models.RoleStudent, u.Role)

	_, err = Authenticate(s, "student@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = Authenticate(s, "nobody@example.com", "password")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestSignupUser(t *testing.T) {
	s, _ := testStore(t)

	u, err := SignupUser(s, "Dana", "dana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, u.Role)
	require.NotEmpty(t, u.Id)

	// new accounts can log in right away
	got, err := Authenticate(s, "dana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, u.Id, got.Id)

	_, err = SignupUser(s, "Dana Again", "dana@example.com", "other")
	require.Error(t, err)
}

func TestFindUserByName(t *testing.T) {
	s, _ := testStore(t)

	u, found := FindUserByName(s, "Mentor User")
	require.True(t, found)
	require.Equal(t, "mentor-01", u.Id)

	_, found = FindUserByName(s, "Nobody")
	require.False(t, found)
}

func TestSessionLifecycle(t *testing.T) {
	s, _ := testStore(t)

	token, err := GenerateSession(s, "admin-01")
	require.NoError(t, err)
	require.Len(t, token, 64)

	u, err := UserFromSession(s, token)
	require.NoError(t, err)
	require.Equal(t, "admin-01", u.Id)

	DeleteSession(s, token)
	_, err = UserFromSession(s, token)
	require.Error(t, err)
}

func TestSessionRequiresRosterUser(t *testing.T) {
	s, _ := testStore(t)

	token, err := GenerateSession(s, "admin-01")
	require.NoError(t, err)

	// a roster swap that drops the user invalidates the session
	SetUsers(s, nil)
	_, err = UserFromSession(s, token)
	require.Error(t, err)
}
