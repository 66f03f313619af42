package helper

import (
	"time"
)

// DateStatus represents how far we are from a deadline.
type DateStatus struct {
	Past     bool // true if the deadline day is already over
	DaysLeft int  // number of full days left (negative if past)
}

// GetDateStatus reports whether a "2006-01-02" deadline has passed and how
// many days remain. Deadlines on agenda items, challenges and assignments
// all use that format.
func GetDateStatus(deadline string) (DateStatus, error) {
	due, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return DateStatus{}, err
	}

	now := time.Now()

	// compare using whole days
	dueDay := due.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)

	daysLeft := int(dueDay.Sub(today).Hours() / 24)
	past := today.After(dueDay)

	return DateStatus{Past: past, DaysLeft: daysLeft}, nil
}
