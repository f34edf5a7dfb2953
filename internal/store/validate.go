package store

import (
	"net/url"
	"strings"
	"unicode"
)

// ContentTypes is the set of accepted content item types.
var ContentTypes = map[string]bool{
	"youtube":   true,
	"twitter":   true,
	"instagram": true,
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	usernameMaxLen = 64
	passwordMinLen = 8
	// bcrypt silently truncates beyond 72 bytes, so longer passwords are rejected.
	passwordMaxLen = 72
)

// ValidateCredentials checks signup input and returns field-level errors.
// The password policy (length plus one letter and one digit) is deliberately
// modest; it is a knob, not a contract.
func ValidateCredentials(username, password string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username cannot be empty"})
	} else if len(username) > usernameMaxLen {
		errs = append(errs, FieldError{Field: "username", Message: "username must be at most 64 characters"})
	}

	switch {
	case len(password) < passwordMinLen:
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	case len(password) > passwordMaxLen:
		errs = append(errs, FieldError{Field: "password", Message: "password must be at most 72 characters"})
	default:
		var hasLetter, hasDigit bool
		for _, r := range password {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		if !hasLetter || !hasDigit {
			errs = append(errs, FieldError{Field: "password", Message: "password must contain at least one letter and one digit"})
		}
	}

	return errs
}

// ValidateContent checks content creation input and returns field-level errors.
func ValidateContent(title, link, contentType string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title cannot be empty"})
	}

	if link == "" {
		errs = append(errs, FieldError{Field: "link", Message: "link cannot be empty"})
	} else {
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, FieldError{Field: "link", Message: "link must be an http(s) URL"})
		}
	}

	if !ContentTypes[contentType] {
		errs = append(errs, FieldError{Field: "type", Message: "type must be one of: youtube, twitter, instagram"})
	}

	return errs
}
