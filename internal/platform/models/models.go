package models

import (
	"time"

	"github.com/google/uuid"
)

// CountryLink is a country entry of the suppliers index page.
type CountryLink struct {
	Name string
	URL  string
}

// SupplierRow contains structural fields scraped from one row of a country listing.
type SupplierRow struct {
	Position       string
	PlatformRating string
	Name           string
	ProfileURL     string
	Website        string
	Rating         string
	Reviews        string
	Availability   string
	ResponseTime   string
}

// ContactInfo contains contact details scraped from supplier's profile page.
// Phones and Emails are sorted and never contain duplicates.
type ContactInfo struct {
	Website string
	Phones  []string
	Emails  []string
}

// EmptyContactInfo returns ContactInfo with empty (non-nil) phones and emails.
func EmptyContactInfo() ContactInfo {
	return ContactInfo{
		Phones: []string{},
		Emails: []string{},
	}
}

// IsEmpty reports whether contact info doesn't contain any data.
func (c ContactInfo) IsEmpty() bool {
	return c.Website == "" && len(c.Phones) == 0 && len(c.Emails) == 0
}

// Supplier is harvested supplier record.
// ID is zero until AssignIDs is called on the aggregated list.
type Supplier struct {
	ID      int
	Country string
	SupplierRow
	Contacts ContactInfo
}

// AssignIDs numbers suppliers from 1 in their current order.
func AssignIDs(suppliers []Supplier) {
	for ix := range suppliers {
		suppliers[ix].ID = ix + 1
	}
}

// CountryStats describes harvesting results of one country.
type CountryStats struct {
	Name      string
	URL       string
	Suppliers int
	Err       string
}

// Harvest is result of harvesting all countries.
type Harvest struct {
	Suppliers []Supplier
	Countries []CountryStats
}

// FailedCountries returns number of countries skipped because of errors.
func (h *Harvest) FailedCountries() int {
	failed := 0
	for ix := range h.Countries {
		if h.Countries[ix].Err != "" {
			failed++
		}
	}
	return failed
}

// SuppliersWithContacts returns number of suppliers with at least one phone or email.
func (h *Harvest) SuppliersWithContacts() int {
	count := 0
	for ix := range h.Suppliers {
		if len(h.Suppliers[ix].Contacts.Phones) > 0 || len(h.Suppliers[ix].Contacts.Emails) > 0 {
			count++
		}
	}
	return count
}

// Run is harvesting process run model.
type Run struct {
	ID                    uuid.UUID
	StartedAt             time.Time
	FinishedAt            *time.Time
	IsSuccess             *bool
	StatusMessage         *string
	Countries             *int32
	FailedCountries       *int32
	Suppliers             *int32
	SuppliersWithContacts *int32
}
