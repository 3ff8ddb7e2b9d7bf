// Package validate implements the registration validation pipeline.
// Every check runs its rules in a fixed order; the first violated rule
// decides the reported message.
package validate

import (
	"fmt"
	"regexp"

	"rolehub/internal/core/domain"
)

var (
	capitalFirst = regexp.MustCompile(`^[A-Z]`)
	lettersOnly  = regexp.MustCompile(`^[A-Za-z]+$`)
	emailShape   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z]{2,})+$`)
	specialChar  = regexp.MustCompile(`[^0-9A-Za-z_]`)
	lowerLetter  = regexp.MustCompile(`[a-z]`)
	upperLetter  = regexp.MustCompile(`[A-Z]`)
	digit        = regexp.MustCompile(`[0-9]`)
)

// Name checks a person-name field: capital first letter, letters only,
// length between 3 and 20.
func Name(name string) error {
	if !capitalFirst.MatchString(name) {
		return domain.BadRequest(fmt.Sprintf("first letter must be capital in %s", name))
	}
	if !lettersOnly.MatchString(name) {
		return domain.BadRequest(fmt.Sprintf("%s must contain letters only", name))
	}
	if len(name) < 3 || len(name) > 20 {
		return domain.BadRequest(fmt.Sprintf("%s length must be between 3 and 20 characters", name))
	}
	return nil
}

// Email checks the local@domain.tld shape.
func Email(email string) error {
	if !emailShape.MatchString(email) {
		return domain.BadRequest("Invalid Email")
	}
	return nil
}

// Password checks password strength: at least one special character,
// one lowercase letter, one uppercase letter, one digit, and a length
// between 8 and 20.
func Password(password string) error {
	if !specialChar.MatchString(password) {
		return domain.BadRequest("Password must be contain at least one special character")
	}
	if !lowerLetter.MatchString(password) {
		return domain.BadRequest("Password must be contain at least one letter from a to z")
	}
	if !upperLetter.MatchString(password) {
		return domain.BadRequest("Password must be contain at least one letter from A to Z")
	}
	if !digit.MatchString(password) {
		return domain.BadRequest("Password must be contain at least one number from 0 to 9")
	}
	if len(password) < 8 || len(password) > 20 {
		return domain.BadRequest("Password length must be between 8 and 20 characters")
	}
	return nil
}
