package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailPattern   = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,}$`)
	phonePattern   = regexp.MustCompile(`^\+201[0-2,5]\d{8}$`)
	addressPattern = regexp.MustCompile(`^[\w\s,.-]{10,255}$`)
)

const (
	minPasswordLen  = 8
	maxPasswordLen  = 72 // bytes, bcrypt input limit
	passwordSymbols = "@#$%^&+="
)

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword enforces: at least 8 characters, one digit, one lower case
// letter, one upper case letter, one of @#$%^&+= and no whitespace at all.
func ValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLen {
		return false
	}
	var digit, lower, upper, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return digit && lower && upper && symbol
}

// ValidateUser checks a registration payload. Every field is required.
func ValidateUser(u domain.NewUser) error {
	if !namePattern.MatchString(u.FirstName) {
		return domain.ErrInvalidFirstName
	}
	if !namePattern.MatchString(u.LastName) {
		return domain.ErrInvalidLastName
	}
	if !ValidEmail(u.Email) {
		return domain.ErrInvalidEmail
	}
	if !ValidPassword(u.Password) {
		return domain.ErrInvalidPassword
	}
	if len(u.Password) > maxPasswordLen {
		return domain.ErrPasswordTooLong
	}
	if !phonePattern.MatchString(u.PhoneNumber) {
		return domain.ErrInvalidPhone
	}
	if !addressPattern.MatchString(u.Address) {
		return domain.ErrInvalidAddress
	}
	if !u.Role.Valid() {
		return domain.ErrInvalidUserRole
	}
	return nil
}

// ValidateUserPatch runs the same checks as ValidateUser on the fields that
// are present. An empty password counts as absent.
func ValidateUserPatch(p domain.UserPatch) error {
	if p.FirstName != nil && !namePattern.MatchString(*p.FirstName) {
		return domain.ErrInvalidFirstName
	}
	if p.LastName != nil && !namePattern.MatchString(*p.LastName) {
		return domain.ErrInvalidLastName
	}
	if p.Email != nil && !ValidEmail(*p.Email) {
		return domain.ErrInvalidEmail
	}
	if p.Password != nil && *p.Password != "" {
		if !ValidPassword(*p.Password) {
			return domain.ErrInvalidPassword
		}
		if len(*p.Password) > maxPasswordLen {
			return domain.ErrPasswordTooLong
		}
	}
	if p.PhoneNumber != nil && !phonePattern.MatchString(*p.PhoneNumber) {
		return domain.ErrInvalidPhone
	}
	if p.Address != nil && !addressPattern.MatchString(*p.Address) {
		return domain.ErrInvalidAddress
	}
	if p.Role != nil && !p.Role.Valid() {
		return domain.ErrInvalidUserRole
	}
	return nil
}
