//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"staybook/internal/domain/property"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyBuilder struct {
	Fields property.Fields
}

// NewPropertyBuilder defaults to an active instant-booking listing at 250/night.
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{Fields: property.Fields{
		ID:             1,
		Slug:           "seaside-cottage",
		Name:           property.LocalizedText{"en": "Seaside Cottage", "ja": "海辺のコテージ"},
		Description:    property.LocalizedText{"en": "Two bedrooms by the beach"},
		Address:        property.LocalizedText{"en": "1 Shore Rd"},
		PricePerNight:  250,
		CleaningFee:    85,
		Currency:       "USD",
		MinNights:      2,
		InstantBooking: true,
		IsActive:       true,
	}}
}

func (b *PropertyBuilder) With(mutate func(*property.Fields)) *PropertyBuilder {
	mutate(&b.Fields)
	return b
}

func (b *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	b.Fields.MaxGuests = &n
	return b
}

func (b *PropertyBuilder) WithMaxNights(n int) *PropertyBuilder {
	b.Fields.MaxNights = &n
	return b
}

func (b *PropertyBuilder) WithFeed(url string) *PropertyBuilder {
	b.Fields.ICalURL = &url
	return b
}

func (b *PropertyBuilder) AsInquiryOnly() *PropertyBuilder {
	b.Fields.InstantBooking = false
	return b
}

func (b *PropertyBuilder) AsInactive() *PropertyBuilder {
	b.Fields.IsActive = false
	return b
}

func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.Reconstruct(b.Fields)
}

func (b *PropertyBuilder) MustBuildDomain() *property.Property {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *PropertyBuilder) BuildInfra() sqlc.Properties {
	f := b.Fields
	now := pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	return sqlc.Properties{
		ID:               f.ID,
		Slug:             f.Slug,
		Name:             mustJSON(f.Name),
		Description:      mustJSON(f.Description),
		Address:          mustJSON(f.Address),
		PricePerNight:    f.PricePerNight,
		CleaningFee:      f.CleaningFee,
		Currency:         f.Currency,
		MinNights:        int32(f.MinNights), // #nosec G115 -- test data
		MaxNights:        pgconv.IntPtrToPgtype(f.MaxNights),
		MaxGuests:        pgconv.IntPtrToPgtype(f.MaxGuests),
		IcalUrl:          pgconv.StringPtrToPgtype(f.ICalURL),
		IcalLastSyncedAt: pgconv.TimePtrToPgtype(f.ICalLastSyncedAt),
		InstantBooking:   f.InstantBooking,
		IsActive:         f.IsActive,
		IsFeatured:       f.IsFeatured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func mustJSON(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
