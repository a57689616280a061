package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"foodshare/internal/pkg/errs"
)

const (
	MaxDisplayNameLength = 80
	MaxLocationLength    = 200
)

var (
	ErrInvalidEmail       = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidRole        = errs.Mark(errs.New("invalid role"), errs.ErrValidation)
	ErrPasswordTooWeak    = errs.Mark(errs.New("password must be at least 8 characters long"), errs.ErrValidation)
	ErrInvalidDisplayName = errs.Mark(errs.New("display name must be 1-80 characters"), errs.ErrValidation)
	ErrLocationTooLong    = errs.Mark(errs.New("location exceeds maximum length"), errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxDisplayNameLength {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: t}, nil
}

func (d DisplayName) String() string { return d.value }

// Location may be empty.
type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxLocationLength {
		return Location{}, ErrLocationTooLong
	}
	return Location{value: t}, nil
}

func (l Location) String() string { return l.value }
