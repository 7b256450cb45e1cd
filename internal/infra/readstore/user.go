package readstore

import (
	"context"

	"staybook/internal/domain/user"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetAdminByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAdminByIDRow, error)
	GetAdminByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Admins, error)
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

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}, nil
}

// FindByEmail loads the account with its password hash, for login only.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.GetAdminByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	addr, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user email is invalid", err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user role is invalid", err)
	}
	return user.ReconstructUser(row.ID, addr, row.PasswordHash, role, pgconv.TimePtrFromPgtype(row.LastLogin), row.IsActive), nil
}
