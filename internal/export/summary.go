package export

import (
	"context"
	"fmt"
	"io"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

const statusOK = "ok"

// Summary prints per country statistics of harvest as a table.
type Summary struct {
	out io.Writer
}

// NewSummary returns new Summary printing to out.
func NewSummary(out io.Writer) *Summary {
	return &Summary{
		out: out,
	}
}

// Export prints harvest statistics.
func (s *Summary) Export(_ context.Context, harvest *models.Harvest) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(s.out)
	tbl.SetStyle(table.StyleRounded)
	tbl.AppendHeader(table.Row{"Country", "Suppliers", "With phones", "With emails", "Status"})

	var totalPhones, totalEmails int
	for _, country := range harvest.Countries {
		suppliers := lo.Filter(harvest.Suppliers, func(s models.Supplier, _ int) bool {
			return s.Country == country.Name
		})
		withPhones := lo.CountBy(suppliers, func(s models.Supplier) bool { return len(s.Contacts.Phones) > 0 })
		withEmails := lo.CountBy(suppliers, func(s models.Supplier) bool { return len(s.Contacts.Emails) > 0 })
		totalPhones += withPhones
		totalEmails += withEmails

		status := statusOK
		if country.Err != "" {
			status = country.Err
		}

		tbl.AppendRow(table.Row{country.Name, country.Suppliers, withPhones, withEmails, status})
	}

	tbl.AppendFooter(table.Row{
		"Total",
		len(harvest.Suppliers),
		totalPhones,
		totalEmails,
		lo.Ternary(harvest.FailedCountries() == 0, statusOK, fmt.Sprintf("failed: %d", harvest.FailedCountries())),
	})
	tbl.Render()

	return nil
}
