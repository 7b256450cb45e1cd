//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/infra/readstore"
	sqlc "staybook/internal/infra/sqlc/generated"
	readstoremock "staybook/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	lastLogin := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockUserReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: user found",
			setupMock: func(mock *readstoremock.MockUserReadQueries) {
				mock.EXPECT().GetAdminByID(ctx, gomock.Any(), userID).Return(sqlc.GetAdminByIDRow{
					ID:        userID,
					Email:     "ops@example.com",
					Role:      "operator",
					IsActive:  true,
					LastLogin: pgtype.Timestamptz{Time: lastLogin, Valid: true},
				}, nil)
			},
		},
		{
			name: "error: user not found",
			setupMock: func(mock *readstoremock.MockUserReadQueries) {
				mock.EXPECT().GetAdminByID(ctx, gomock.Any(), userID).Return(sqlc.GetAdminByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockUserReadQueries) {
				mock.EXPECT().GetAdminByID(ctx, gomock.Any(), userID).Return(sqlc.GetAdminByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, userID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "operator", result.Role)
			require.NotNil(t, result.LastLogin)
			assert.Equal(t, lastLogin, *result.LastLogin)
		})
	}
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reconstructs the account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().GetAdminByEmail(ctx, gomock.Any(), "admin@example.com").Return(sqlc.Admins{
			ID:           id,
			Email:        "admin@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         "admin",
			IsActive:     true,
		}, nil)

		u, err := store.FindByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID())
		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
	})

	t.Run("error: stored role is unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetAdminByEmail(ctx, gomock.Any(), "admin@example.com").Return(sqlc.Admins{
			ID:    uuid.New(),
			Email: "admin@example.com",
			Role:  "superuser",
		}, nil)

		_, err := store.FindByEmail(ctx, "admin@example.com")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetAdminByEmail(ctx, gomock.Any(), "ghost@example.com").Return(sqlc.Admins{}, pgx.ErrNoRows)

		_, err := store.FindByEmail(ctx, "ghost@example.com")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
