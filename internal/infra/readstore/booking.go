package readstore

import (
	"context"
	"strings"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const inquiryCodePrefix = "INQ-"

type BookingReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	GetReservationByConfirmationCode(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.GetReservationByConfirmationCodeRow, error)
	GetInquiryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetInquiryByIDRow, error)
	GetInquiryByConfirmationCode(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.GetInquiryByConfirmationCodeRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByConfirmationCode picks the table from the code prefix.
func (r *BookingReadStore) FindByConfirmationCode(ctx context.Context, code string) (*queries.BookingView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if strings.HasPrefix(code, inquiryCodePrefix) {
		row, err := r.queries.GetInquiryByConfirmationCode(ctx, r.db, code)
		if err != nil {
			return nil, wrapBookingErr(err)
		}
		return inquiryView(sqlc.GetInquiryByIDRow(row))
	}

	row, err := r.queries.GetReservationByConfirmationCode(ctx, r.db, code)
	if err != nil {
		return nil, wrapBookingErr(err)
	}
	return reservationView(sqlc.GetReservationByIDRow(row))
}

func (r *BookingReadStore) FindReservationByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapBookingErr(err)
	}
	return reservationView(row)
}

func (r *BookingReadStore) FindInquiryByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetInquiryByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapBookingErr(err)
	}
	return inquiryView(row)
}

func wrapBookingErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get booking", err)
}

func reservationView(row sqlc.GetReservationByIDRow) (*queries.BookingView, error) {
	price, err := priceView(row.Pricing)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		Kind:             booking.KindReservation.String(),
		ID:               row.ID,
		PropertyID:       row.PropertyID,
		PropertySlug:     row.PropertySlug,
		CheckIn:          datePtr(row.CheckIn),
		CheckOut:         datePtr(row.CheckOut),
		Guest:            guestView(row.GuestName, row.GuestEmail, row.GuestPhone, row.GuestCount),
		Pricing:          price,
		CouponCode:       pgconv.StringPtrFromPgtype(row.CouponCode),
		ConfirmationCode: row.ConfirmationCode,
		Status:           row.Status,
		Note:             pgconv.StringPtrFromPgtype(row.Note),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func inquiryView(row sqlc.GetInquiryByIDRow) (*queries.BookingView, error) {
	price, err := priceView(row.Pricing)
	if err != nil {
		return nil, err
	}
	message := row.Message
	return &queries.BookingView{
		Kind:             booking.KindInquiry.String(),
		ID:               row.ID,
		PropertyID:       row.PropertyID,
		PropertySlug:     row.PropertySlug,
		CheckIn:          datePtr(row.CheckIn),
		CheckOut:         datePtr(row.CheckOut),
		Guest:            guestView(row.GuestName, row.GuestEmail, row.GuestPhone, row.GuestCount),
		Pricing:          price,
		CouponCode:       pgconv.StringPtrFromPgtype(row.CouponCode),
		ConfirmationCode: row.ConfirmationCode,
		Status:           row.Status,
		Message:          &message,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func priceView(raw []byte) (*queries.PriceView, error) {
	q, err := converter.QuoteFromJSON(raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing snapshot", err)
	}
	if q == nil {
		return nil, nil
	}
	v := queries.NewPriceView(*q)
	return &v, nil
}

func guestView(name, email string, phone pgtype.Text, count int32) queries.GuestView {
	return queries.GuestView{
		Name:  name,
		Email: email,
		Phone: pgconv.StringPtrFromPgtype(phone),
		Count: int(count),
	}
}

func datePtr(pd pgtype.Date) *calendar.Date {
	if !pd.Valid {
		return nil
	}
	d := converter.DateFromPgtype(pd)
	return &d
}
