package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/coupon"
	"staybook/internal/domain/property"
	"staybook/internal/domain/user"
	sqlc "staybook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction and retries it on serialization
	// failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, for checks that run
	// before a write begins.
	CommandReads() CommandReads
}

type Tx interface {
	Properties() PropertyRepository
	BlockedIntervals() BlockedIntervalRepository
	Coupons() CouponRepository
	Reservations() ReservationRepository
	Inquiries() InquiryRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads aggregates for the write side. Outside a transaction it
// reads from the pool; from Tx.Reads() it sees the transaction's snapshot.
type CommandReads interface {
	PropertyByID(ctx context.Context, id int64) (*property.Property, error)
	PropertyBySlug(ctx context.Context, slug string) (*property.Property, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	GuestRedemptions(ctx context.Context, couponID uuid.UUID, email string) (int, error)
	IdempotencyByKey(ctx context.Context, key, endpoint string) (*IdempotencyRecord, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
}

type PropertyRepository interface {
	// LockForUpdate takes the row lock that serializes calendar writes of one property.
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*property.Property, error)
	MarkSynced(ctx context.Context, tx sqlc.DBTX, id int64, at time.Time) error
}

type BlockedIntervalRepository interface {
	ListEndingAfter(ctx context.Context, tx sqlc.DBTX, propertyID int64, after calendar.Date) ([]*calendar.BlockedInterval, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, propertyID int64, id uuid.UUID) (*calendar.BlockedInterval, error)
	Create(ctx context.Context, tx sqlc.DBTX, interval *calendar.BlockedInterval) error
	ReplaceImported(ctx context.Context, tx sqlc.DBTX, propertyID int64, intervals []*calendar.BlockedInterval) (int, error)
	DeleteManual(ctx context.Context, tx sqlc.DBTX, propertyID int64, id uuid.UUID) error
}

type CouponRepository interface {
	LockByCode(ctx context.Context, tx sqlc.DBTX, code string) (*coupon.Coupon, error)
	// Redeem increments the counter only while it is below the cap and
	// returns coupon.ErrLimitReached when it is not.
	Redeem(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon, reservationID uuid.UUID, guestEmail string, discount int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) error
}

type InquiryRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, inq *booking.Inquiry) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, endpoint string, kind booking.Kind, resultID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key, endpoint string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, lastError string, retryAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}
