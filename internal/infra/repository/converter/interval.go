package converter

import (
	"staybook/internal/domain/calendar"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

func IntervalToDomain(row sqlc.BlockedIntervals) (*calendar.BlockedInterval, error) {
	source, err := calendar.NewSource(row.Source)
	if err != nil {
		return nil, err
	}
	span, err := calendar.NewDateRange(DateFromPgtype(row.StartDate), DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, err
	}
	return calendar.ReconstructBlockedInterval(
		row.ID,
		row.PropertyID,
		span,
		pgconv.StringPtrFromPgtype(row.Reason),
		source,
		pgconv.StringPtrFromPgtype(row.ExternalUid),
		pgconv.UUIDPtrFromPgtype(row.ReservationID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func IntervalsToDomain(rows []sqlc.BlockedIntervals) ([]*calendar.BlockedInterval, error) {
	out := make([]*calendar.BlockedInterval, 0, len(rows))
	for _, row := range rows {
		iv, err := IntervalToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

func IntervalToCreateParams(iv *calendar.BlockedInterval) sqlc.CreateBlockedIntervalParams {
	return sqlc.CreateBlockedIntervalParams{
		ID:            iv.ID(),
		PropertyID:    iv.PropertyID(),
		StartDate:     DateToPgtype(iv.Start()),
		EndDate:       DateToPgtype(iv.End()),
		Reason:        pgconv.StringPtrToPgtype(iv.Reason()),
		Source:        iv.Source().String(),
		ExternalUid:   pgconv.StringPtrToPgtype(iv.ExternalUID()),
		ReservationID: pgconv.UUIDPtrToPgtype(iv.ReservationID()),
		CreatedAt:     pgconv.TimeToPgtype(iv.CreatedAt()),
	}
}
