package converter

import (
	"encoding/json"
	"fmt"

	"staybook/internal/domain/property"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

func PropertyToDomain(row sqlc.Properties) (*property.Property, error) {
	name, err := localized(row.Name)
	if err != nil {
		return nil, fmt.Errorf("property %d name: %w", row.ID, err)
	}
	description, err := localized(row.Description)
	if err != nil {
		return nil, fmt.Errorf("property %d description: %w", row.ID, err)
	}
	address, err := localized(row.Address)
	if err != nil {
		return nil, fmt.Errorf("property %d address: %w", row.ID, err)
	}

	return property.Reconstruct(property.Fields{
		ID:               row.ID,
		Slug:             row.Slug,
		Name:             name,
		Description:      description,
		Address:          address,
		PricePerNight:    row.PricePerNight,
		CleaningFee:      row.CleaningFee,
		Currency:         row.Currency,
		MinNights:        int(row.MinNights),
		MaxNights:        pgconv.IntPtrFromPgtype(row.MaxNights),
		MaxGuests:        pgconv.IntPtrFromPgtype(row.MaxGuests),
		ICalURL:          pgconv.StringPtrFromPgtype(row.IcalUrl),
		ICalLastSyncedAt: pgconv.TimePtrFromPgtype(row.IcalLastSyncedAt),
		InstantBooking:   row.InstantBooking,
		IsActive:         row.IsActive,
		IsFeatured:       row.IsFeatured,
	})
}

func localized(raw []byte) (property.LocalizedText, error) {
	if len(raw) == 0 {
		return property.LocalizedText{}, nil
	}
	var text property.LocalizedText
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, err
	}
	return text, nil
}
