package decoder

import (
	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
)

const (
	countryLinksSelector = "div.suppliers-btn-group a[href]"
	supplierRowsSelector = "tr.distributor_row"
)

// Decoder decodes abcp.ru pages into domain models.
// Relative links are resolved against base url.
type Decoder struct {
	baseURL string
}

// NewDecoder returns new Decoder resolving relative links against baseURL.
func NewDecoder(baseURL string) *Decoder {
	return &Decoder{
		baseURL: baseURL,
	}
}

// Countries returns country links listed on suppliers index page in document order.
func (d *Decoder) Countries(doc *goquery.Document) []models.CountryLink {
	links := doc.Find(countryLinksSelector)
	countries := make([]models.CountryLink, 0, links.Length())

	links.Each(func(_ int, link *goquery.Selection) {
		countries = append(countries, models.CountryLink{
			Name: text(link),
			URL:  ResolveURL(d.baseURL, link.AttrOr("href", "")),
		})
	})

	return countries
}

// SupplierRows returns supplier rows of country listing page.
func (d *Decoder) SupplierRows(doc *goquery.Document) *goquery.Selection {
	return doc.Find(supplierRowsSelector)
}
