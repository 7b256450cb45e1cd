package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"staybook/internal/domain/coupon"
	"staybook/internal/domain/property"
	"staybook/internal/domain/user"
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/repository"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries  = 3
	baseTxBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// Within runs fn in a READ COMMITTED transaction. Booking writes serialize on
// the property row lock, so the stronger isolation levels buy nothing here.
// Serialization failures and deadlocks rerun fn from scratch.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := range maxTxRetries + 1 {
		if attempt > 0 {
			wait := backoff(attempt)
			u.logger.Warn("retrying transaction",
				"attempt", attempt+1,
				"wait_ms", wait.Milliseconds(),
				"error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = u.attempt(ctx, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
	}

	u.logger.Error("transaction failed after max retries", "attempts", maxTxRetries+1, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt keeps begin, rollback and commit in one frame so a retry never
// stacks deferred rollbacks.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// backoff doubles per attempt and adds up to 20% jitter.
func backoff(attempt int) time.Duration {
	wait := baseTxBackoff << (attempt - 1)
	return wait + rand.N(wait/5)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	propertyRepo     shared.PropertyRepository
	intervalRepo     shared.BlockedIntervalRepository
	couponRepo       shared.CouponRepository
	reservationRepo  shared.ReservationRepository
	inquiryRepo      shared.InquiryRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Properties() shared.PropertyRepository {
	if t.propertyRepo == nil {
		t.propertyRepo = repository.NewPropertyRepository(t.uow.q)
	}
	return t.propertyRepo
}

func (t *pgTx) BlockedIntervals() shared.BlockedIntervalRepository {
	if t.intervalRepo == nil {
		t.intervalRepo = repository.NewBlockedIntervalRepository(t.uow.q)
	}
	return t.intervalRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q)
	}
	return t.couponRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Inquiries() shared.InquiryRepository {
	if t.inquiryRepo == nil {
		t.inquiryRepo = repository.NewInquiryRepository(t.uow.q)
	}
	return t.inquiryRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	propertyStore    *readstore.PropertyReadStore
	couponStore      *readstore.CouponReadStore
	idempotencyStore *readstore.IdempotencyReadStore
	userStore        *readstore.UserReadStore
}

func (r *commandReads) properties() *readstore.PropertyReadStore {
	if r.propertyStore == nil {
		r.propertyStore = readstore.NewPropertyReadStore(r.uow.q, r.dbtx)
	}
	return r.propertyStore
}

func (r *commandReads) coupons() *readstore.CouponReadStore {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.uow.q, r.dbtx)
	}
	return r.couponStore
}

func (r *commandReads) PropertyByID(ctx context.Context, id int64) (*property.Property, error) {
	return r.properties().FindByID(ctx, id)
}

func (r *commandReads) PropertyBySlug(ctx context.Context, slug string) (*property.Property, error) {
	return r.properties().FindBySlug(ctx, slug)
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.coupons().FindByCode(ctx, code)
}

func (r *commandReads) GuestRedemptions(ctx context.Context, couponID uuid.UUID, email string) (int, error) {
	return r.coupons().CountGuestRedemptions(ctx, couponID, email)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, endpoint string) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q, r.dbtx)
	}
	return r.idempotencyStore.Get(ctx, key, endpoint)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore.FindByEmail(ctx, email)
}
