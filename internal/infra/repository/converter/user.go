package converter

import (
	"foodshare/internal/domain/user"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName().String(),
		Location:     u.Location().String(),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserToUpdateProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:          u.ID(),
		DisplayName: u.DisplayName().String(),
		Location:    u.Location().String(),
		Role:        u.Role().String(),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

// UserFromFindByIDRow rebuilds a user without its password hash, which the
// by-id query never selects.
func UserFromFindByIDRow(row sqlc.FindUserByIDRow) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	displayName, err := user.NewDisplayName(row.DisplayName)
	if err != nil {
		return nil, err
	}
	location, err := user.NewLocation(row.Location)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(
		row.ID,
		email,
		"",
		displayName,
		location,
		role,
		row.Verified,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
