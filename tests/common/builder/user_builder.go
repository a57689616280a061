//go:build unit || e2e

package builder

import (
	"time"

	"foodshare/internal/domain/user"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Location     string
	Role         string
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		DisplayName:  "Test User",
		Location:     "Downtown",
		Role:         "both",
		IsActive:     true,
		Now:          time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	displayName, err := user.NewDisplayName(u.DisplayName)
	if err != nil {
		return nil, err
	}

	location, err := user.NewLocation(u.Location)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, displayName, location, role, u.Now), nil
}

// BuildReconstructed keeps the builder's ID, unlike BuildDomain.
func (u *UserBuilder) BuildReconstructed() *user.User {
	email, _ := user.NewEmail(u.Email)
	displayName, _ := user.NewDisplayName(u.DisplayName)
	location, _ := user.NewLocation(u.Location)
	return user.Reconstruct(u.ID, email, u.PasswordHash, displayName, location, user.Role(u.Role),
		false, u.IsActive, nil, u.Now, u.Now)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Location:     u.Location,
		Role:         u.Role,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildFindByIDRow() sqlc.FindUserByIDRow {
	return sqlc.FindUserByIDRow{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Location:    u.Location,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Location:    u.Location,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   u.Now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithLocation(location string) *UserBuilder {
	u.Location = location
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
