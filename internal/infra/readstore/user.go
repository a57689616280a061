package readstore

import (
	"context"

	"github.com/google/uuid"

	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"
	"foodshare/internal/usecase/shared"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserViewFromFindByIDRow(row), nil
}

// FindCredentialsByEmail is the only read that exposes the password hash.
func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &shared.UserCredentials{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}, nil
}

func toUserViewFromFindByIDRow(row sqlc.FindUserByIDRow) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		Location:    row.Location,
		Role:        row.Role,
		Verified:    row.Verified,
		IsActive:    row.IsActive,
		LastLogin:   pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
