package decoder

import (
	"fmt"
	"strings"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
)

const minRowCells = 8

const (
	positionCell = iota
	platformRatingCell
	nameCell
	_
	websiteCell
	_
	availabilityCell
	responseTimeCell
)

var ratingReplacer = strings.NewReplacer("Средний рейтинг", "", "&nbsp;", "")

// SupplierRow decodes single listing row. Missing fields are left empty.
// It returns ErrMalformedRow when row has less than 8 cells.
func (d *Decoder) SupplierRow(row *goquery.Selection) (models.SupplierRow, error) {
	cells := row.Find("td")
	if cells.Length() < minRowCells {
		return models.SupplierRow{}, fmt.Errorf("%w: got %d cells, want at least %d", ErrMalformedRow, cells.Length(), minRowCells)
	}

	supplier := models.SupplierRow{
		Position:       text(cells.Eq(positionCell)),
		PlatformRating: text(cells.Eq(platformRatingCell)),
		Website:        text(cells.Eq(websiteCell).Find("span")),
		Rating:         rating(row),
		Reviews:        text(row.Find("span.reviewsQuant")),
		Availability:   text(cells.Eq(availabilityCell)),
		ResponseTime:   text(cells.Eq(responseTimeCell)),
	}

	// first link points to the logo, second one carries the name
	if links := cells.Eq(nameCell).Find("a[href*='/suppliers']"); links.Length() > 1 {
		profile := links.Eq(1)
		supplier.Name = text(profile)
		supplier.ProfileURL = ResolveURL(d.baseURL, profile.AttrOr("href", ""))
	}

	return supplier, nil
}

func rating(row *goquery.Selection) string {
	title, ok := row.Find("span.starsBlock").First().Attr("title")
	if !ok {
		return ""
	}
	return strings.TrimSpace(ratingReplacer.Replace(title))
}
