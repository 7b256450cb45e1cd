package repository

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

// Create fails with KindConflict when a confirmed reservation already
// overlaps the stay.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) error {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err)
	}
	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

type InquiryWriteQueries interface {
	CreateInquiry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInquiryParams) error
}

type InquiryRepository struct {
	queries InquiryWriteQueries
}

func NewInquiryRepository(queries InquiryWriteQueries) *InquiryRepository {
	return &InquiryRepository{queries: queries}
}

func (r *InquiryRepository) Create(ctx context.Context, tx sqlc.DBTX, inq *booking.Inquiry) error {
	params, err := converter.InquiryToCreateParams(inq)
	if err != nil {
		return infra.WrapRepoErr("failed to encode inquiry", err)
	}
	if err := r.queries.CreateInquiry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create inquiry", err)
	}
	return nil
}
