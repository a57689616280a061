package user

import (
	"time"

	"foodshare/internal/pkg/patch"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  DisplayName
	location     Location
	role         Role
	verified     bool
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser starts unverified; verification happens outside this service.
func NewUser(email Email, passwordHash string, displayName DisplayName, location Location, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		location:     location,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// ProfileUpdate carries the optional fields of a partial profile change.
type ProfileUpdate struct {
	DisplayName *string
	Location    *string
	Role        *string
}

// ApplyProfileUpdate validates every present field before mutating anything.
func (u *User) ApplyProfileUpdate(upd ProfileUpdate, now time.Time) error {
	displayName, err := patch.Field(upd.DisplayName, u.displayName, NewDisplayName)
	if err != nil {
		return err
	}
	location, err := patch.Field(upd.Location, u.location, NewLocation)
	if err != nil {
		return err
	}
	role, err := patch.Field(upd.Role, u.role, NewRole)
	if err != nil {
		return err
	}

	u.displayName = displayName
	u.location = location
	u.role = role
	u.updatedAt = now
	return nil
}

func Reconstruct(id uuid.UUID, email Email, passwordHash string, displayName DisplayName, location Location, role Role, verified, isActive bool, lastLogin *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		location:     location,
		role:         role,
		verified:     verified,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) DisplayName() DisplayName   { return u.displayName }
func (u *User) Location() Location         { return u.location }
func (u *User) Role() Role                 { return u.role }
func (u *User) Verified() bool             { return u.verified }
func (u *User) LastLogin() *time.Time      { return u.lastLogin }
func (u *User) IsActive() bool             { return u.isActive }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }
