//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"staybook/internal/domain/coupon"
	"staybook/internal/infra"
	"staybook/internal/infra/readstore"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/tests/common/builder"
	readstoremock "staybook/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponReadStore_FindByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success: percentage coupon is decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})

		row := builder.NewCouponBuilder().WithPercent(1250).BuildInfra()
		mockQueries.EXPECT().GetCouponByCode(ctx, gomock.Any(), "SUMMER10").Return(row, nil)

		c, err := store.FindByCode(ctx, "SUMMER10")
		require.NoError(t, err)
		assert.Equal(t, coupon.DiscountPercentage, c.Discount().Type())
		assert.Equal(t, int64(1250), c.Discount().Value())
		assert.Equal(t, int64(13), c.DiscountFor(100))
	})

	t.Run("error: unknown code is a coupon rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetCouponByCode(ctx, gomock.Any(), "NOPE").Return(sqlc.Coupons{}, pgx.ErrNoRows)

		c, err := store.FindByCode(ctx, "NOPE")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, coupon.ErrNotFound)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetCouponByCode(ctx, gomock.Any(), "SUMMER10").Return(sqlc.Coupons{}, errDBConnectionLost)

		_, err := store.FindByCode(ctx, "SUMMER10")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCouponReadStore_CountGuestRedemptions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
	store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})

	id := builder.NewCouponBuilder().ID
	mockQueries.EXPECT().
		CountGuestRedemptions(ctx, gomock.Any(), sqlc.CountGuestRedemptionsParams{CouponID: id, GuestEmail: "guest@example.com"}).
		Return(int64(2), nil)

	n, err := store.CountGuestRedemptions(ctx, id, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
