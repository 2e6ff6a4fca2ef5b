// Package validators holds the pure field validators used by checkout and the
// contact form. Each validator checks one value; callers run them all and
// collect every failure into an Errors map so the client gets the full set of
// per-field messages in one response.
package validators

import (
	"errors"
	"regexp"
)

// Errors maps a form field name to its validation message.
type Errors map[string]string

// Add records err under field if err is non-nil.
func (e Errors) Add(field string, err error) {
	if err != nil {
		e[field] = err.Error()
	}
}

var (
	// \p{L}\p{N} instead of \w: Go's \w is ASCII-only, and these fields
	// must accept letters from any script.
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s'-]{3,}$`)
	locationRe = regexp.MustCompile(`^[\p{L}\p{N}_\s.,\-/]{3,}$`)
	addressRe  = regexp.MustCompile(`^[\p{L}\p{N}_\s.,\-/#&()]{10,}$`)
	notesRe    = regexp.MustCompile(`^[\p{L}\p{N}_\s.,\-!?()]{0,200}$`)
	mobileRe   = regexp.MustCompile(`^\d{10}$`)
)

// Name allows letters, spaces, apostrophes and hyphens, minimum 3 characters.
func Name(value string) error {
	if !nameRe.MatchString(value) {
		return errors.New("name can only contain letters, spaces, apostrophes and hyphens")
	}
	return nil
}

// Location allows word characters, spaces and .,-/ with minimum length 3.
func Location(value string) error {
	if !locationRe.MatchString(value) {
		return errors.New("location must be at least 3 characters and can only contain letters, numbers, spaces, commas, periods, hyphens or slashes")
	}
	return nil
}

// Address allows the location charset plus #&() with minimum length 10.
func Address(value string) error {
	if !addressRe.MatchString(value) {
		return errors.New("address must be at least 10 characters and can only contain letters, numbers, spaces, commas, periods, hyphens, slashes, hashes, ampersands or parentheses")
	}
	return nil
}

// Mobile requires exactly 10 digits.
func Mobile(value string) error {
	if !mobileRe.MatchString(value) {
		return errors.New("mobile number must be 10 digits")
	}
	return nil
}

// Notes is optional: empty passes, otherwise word characters plus .,-!?()
// up to 200 characters.
func Notes(value string) error {
	if value == "" {
		return nil
	}
	if !notesRe.MatchString(value) {
		return errors.New("notes can only contain letters, numbers, spaces, commas, periods, hyphens, exclamation marks, question marks or parentheses, max 200 characters")
	}
	return nil
}
