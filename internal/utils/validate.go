package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// ValidateEmail checks and normalizes an email address.
func ValidateEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid email address")
	}
	return normalized, nil
}

// ValidateMobile checks and normalizes a mobile number to bare digits.
// Accepts an optional leading + and common separators.
func ValidateMobile(mobile string) (string, error) {
	normalized := strings.TrimSpace(mobile)
	normalized = strings.TrimPrefix(normalized, "+")
	normalized = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(normalized)
	if !mobilePattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid mobile number")
	}
	return normalized, nil
}
