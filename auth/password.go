package auth

import "crypto/subtle"

// CheckPassword compares the stored password with the submitted one.
// Roster passwords are plaintext mock data, so equality is the whole
// contract; the comparison is constant-time anyway.
func CheckPassword(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
