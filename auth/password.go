package auth

import "unicode"

// ValidPassword enforces the account password policy: at least 6
// characters including at least one letter.
func ValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	for _, r := range password {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
