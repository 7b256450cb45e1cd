package repository

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
	ReleaseIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

// TryInsert reports whether this call created the key.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, sqlc.ClaimExpiredIdempotencyKeyParams{
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Key:         key,
		Endpoint:    endpoint,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, key, endpoint string, kind booking.Kind, resultID uuid.UUID) error {
	err := r.queries.CompleteIdempotencyKey(ctx, tx, sqlc.CompleteIdempotencyKeyParams{
		Key:        key,
		Endpoint:   endpoint,
		ResultKind: pgconv.StringToPgtype(kind.String()),
		ResultID:   pgconv.UUIDToPgtype(resultID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

// Release drops a key still in processing so the client can retry after a failure.
func (r *IdempotencyRepository) Release(ctx context.Context, tx sqlc.DBTX, key, endpoint string) error {
	err := r.queries.ReleaseIdempotencyKey(ctx, tx, sqlc.ReleaseIdempotencyKeyParams{Key: key, Endpoint: endpoint})
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}
