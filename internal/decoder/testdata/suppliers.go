package testdata

import "github.com/MichalMitros/abcp-harvester/internal/platform/models"

// BaseURL is base url used to resolve links of test pages.
const BaseURL = "https://www.abcp.ru"

// Countries are countries listed in index.html.
var Countries = []models.CountryLink{
	{Name: "Россия", URL: "https://www.abcp.ru/suppliers/russia"},
	{Name: "Казахстан", URL: "https://www.abcp.ru/suppliers/kazakhstan"},
}

// SupplierRows are valid rows of listing.html.
var SupplierRows = []models.SupplierRow{
	{
		Position:       "1",
		PlatformRating: "4.9",
		Name:           "Авто Плюс",
		ProfileURL:     "https://www.abcp.ru/suppliers/101",
		Website:        "autoplus.ru",
		Rating:         "4.5",
		Reviews:        "12",
		Availability:   "98%",
		ResponseTime:   "15",
	},
	{
		Position:       "2",
		PlatformRating: "3.1",
		Name:           "Запчасть",
		ProfileURL:     "https://www.abcp.ru/suppliers/102",
		Availability:   "75%",
		ResponseTime:   "120",
	},
}

// Contacts are contacts found in profile.html.
var Contacts = models.ContactInfo{
	Website: "autoplus.ru",
	Phones:  []string{"74951234567", "78125556677", "79261234567", "79991112233"},
	Emails:  []string{"sales@autoplus.ru"},
}
