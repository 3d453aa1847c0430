package storage

import (
	"strings"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/google/uuid"

	pgmodels "github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/model"
)

//go:generate jet -source=postgres -dsn=${DATABASE_URL} -schema=public -path=./gen

const listSeparator = "\n"

func toDBRun(run *models.Run) *pgmodels.HarvestRun {
	return &pgmodels.HarvestRun{
		ID:                    run.ID,
		StartedAt:             run.StartedAt,
		FinishedAt:            run.FinishedAt,
		Success:               run.IsSuccess,
		StatusMessage:         run.StatusMessage,
		Countries:             run.Countries,
		FailedCountries:       run.FailedCountries,
		Suppliers:             run.Suppliers,
		SuppliersWithContacts: run.SuppliersWithContacts,
	}
}

// ToDBSupplier converts models.Supplier harvested in run into postgres supplier model.
func ToDBSupplier(runID uuid.UUID, supplier *models.Supplier) pgmodels.Supplier {
	return pgmodels.Supplier{
		RunID:          runID,
		SupplierID:     int32(supplier.ID),
		Country:        supplier.Country,
		Position:       supplier.Position,
		PlatformRating: supplier.PlatformRating,
		Name:           supplier.Name,
		ProfileURL:     supplier.ProfileURL,
		Website:        supplier.Website,
		Rating:         supplier.Rating,
		Reviews:        supplier.Reviews,
		Availability:   supplier.Availability,
		ResponseTime:   supplier.ResponseTime,
		ContactWebsite: supplier.Contacts.Website,
		Phones:         strings.Join(supplier.Contacts.Phones, listSeparator),
		Emails:         strings.Join(supplier.Contacts.Emails, listSeparator),
	}
}

// FromDBSupplier converts postgres supplier model into models.Supplier.
func FromDBSupplier(supplier *pgmodels.Supplier) models.Supplier {
	return models.Supplier{
		ID:      int(supplier.SupplierID),
		Country: supplier.Country,
		SupplierRow: models.SupplierRow{
			Position:       supplier.Position,
			PlatformRating: supplier.PlatformRating,
			Name:           supplier.Name,
			ProfileURL:     supplier.ProfileURL,
			Website:        supplier.Website,
			Rating:         supplier.Rating,
			Reviews:        supplier.Reviews,
			Availability:   supplier.Availability,
			ResponseTime:   supplier.ResponseTime,
		},
		Contacts: models.ContactInfo{
			Website: supplier.ContactWebsite,
			Phones:  splitList(supplier.Phones),
			Emails:  splitList(supplier.Emails),
		},
	}
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, listSeparator)
}
