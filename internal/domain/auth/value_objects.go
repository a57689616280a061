package auth

import (
	"foodshare/internal/domain/user"
	"foodshare/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid email or password"), errs.ErrUnauthenticated)
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a validated signup request.
type Registration struct {
	Credentials
	displayName user.DisplayName
	location    user.Location
	role        user.Role
}

func NewRegistration(emailStr, passwordStr, displayName, location, role string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewDisplayName(displayName)
	if err != nil {
		return Registration{}, err
	}
	loc, err := user.NewLocation(location)
	if err != nil {
		return Registration{}, err
	}
	if role == "" {
		role = user.RoleBoth.String()
	}
	r, err := user.NewRole(role)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, displayName: name, location: loc, role: r}, nil
}

func (r Registration) DisplayName() user.DisplayName { return r.displayName }
func (r Registration) Location() user.Location       { return r.location }
func (r Registration) Role() user.Role               { return r.role }
