package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
}

type BookingQueries interface {
	GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error) {
	view, err := q.readStore.FindByConfirmationCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}
