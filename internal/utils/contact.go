package utils

import "regexp"

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^\+?[0-9][0-9\s-]{6,14}$`)
)

// IsValidEmail checks the shape of a contact email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidMobile checks the shape of a contact mobile number: optional leading +,
// 7 to 15 digits, spaces and dashes tolerated.
func IsValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}
