package helpers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/MichalMitros/abcp-harvester/internal/platform/models/modelstesting"
	pgmodels "github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	indexPath   = "/suppliers"
)

// Site is fake suppliers directory served by httptest server.
type Site struct {
	Server *httptest.Server
	// Suppliers are suppliers which should be harvested from the site, without IDs.
	Suppliers []models.Supplier
	pages     map[string]string
}

// NewSite serves fake suppliers directory with perCountry suppliers in every country.
// Every listing has one additional malformed row, and the last supplier of every country
// has a missing profile page, so its contacts can't be harvested.
func NewSite(t *testing.T, countries []string, perCountry int) *Site {
	t.Helper()

	site := &Site{
		pages: map[string]string{},
	}

	site.Server = httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		page, ok := site.pages[req.URL.Path]
		if !ok {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}
		wrt.Header().Add(contentType, "text/html; charset=utf-8")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write([]byte(page))
	}))
	t.Cleanup(func() {
		site.Server.Close()
	})

	var index strings.Builder
	index.WriteString(`<html><body><div class="suppliers-btn-group">`)

	profileID := 0
	for countryIx, country := range countries {
		countryPath := fmt.Sprintf("%s/country-%d", indexPath, countryIx)
		fmt.Fprintf(&index, `<a href="%s">%s</a>`, countryPath, html.EscapeString(country))

		var listing strings.Builder
		listing.WriteString(`<html><body><table><tbody>`)

		for ix := 0; ix < perCountry; ix++ {
			profileID++
			profilePath := fmt.Sprintf("%s/profile-%d", indexPath, profileID)

			supplier := modelstesting.FakeSupplier(func(s *models.Supplier) {
				s.Country = country
				s.Position = fmt.Sprint(ix + 1)
				s.ProfileURL = site.Server.URL + profilePath
			})

			if ix == perCountry-1 {
				supplier.Contacts = models.EmptyContactInfo()
			} else {
				site.pages[profilePath] = profilePage(&supplier.Contacts)
			}

			listing.WriteString(listingRow(&supplier, profilePath))
			site.Suppliers = append(site.Suppliers, supplier)
		}

		listing.WriteString(`<tr class="distributor_row"><td>0</td><td>broken</td></tr>`)
		listing.WriteString(`</tbody></table></body></html>`)
		site.pages[countryPath] = listing.String()
	}

	index.WriteString(`</div></body></html>`)
	site.pages[indexPath] = index.String()

	return site
}

// URL returns base url of the site.
func (s *Site) URL() string {
	return s.Server.URL
}

func listingRow(s *models.Supplier, profilePath string) string {
	return fmt.Sprintf(`<tr class="distributor_row">
		<td>%s</td>
		<td>%s</td>
		<td><a href="%s"><img src="/logo.png"></a><a href="%s">%s</a></td>
		<td></td>
		<td><span>%s</span></td>
		<td><span class="starsBlock" title="Средний рейтинг&nbsp;%s"></span><span class="reviewsQuant">%s</span></td>
		<td>%s</td>
		<td>%s</td>
	</tr>`,
		s.Position,
		html.EscapeString(s.PlatformRating),
		profilePath,
		profilePath,
		html.EscapeString(s.Name),
		html.EscapeString(s.Website),
		s.Rating,
		s.Reviews,
		s.Availability,
		s.ResponseTime,
	)
}

func profilePage(c *models.ContactInfo) string {
	var page strings.Builder
	page.WriteString(`<html><body><div class="fr-panel-body">`)
	fmt.Fprintf(&page, `<p>Сайт: <a href="http://%s">%s</a></p>`, c.Website, c.Website)
	for _, phone := range c.Phones {
		fmt.Fprintf(&page, `<p><a href="tel:+%s">+%s</a></p>`, phone, phone)
	}
	for _, email := range c.Emails {
		fmt.Fprintf(&page, `<p><a href="mailto:%s">%s</a></p>`, email, email)
	}
	page.WriteString(`</div></body></html>`)
	return page.String()
}

// WaitForRunToBeFinished is blocking helper function, returns run after it is finished.
func WaitForRunToBeFinished(t *testing.T, db qrm.DB, runID uuid.UUID, timeout time.Duration) *pgmodels.HarvestRun {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "run wasn't finished in time", runID.String())
		case <-time.After(time.Millisecond * 250):
		}

		var run pgmodels.HarvestRun
		err := table.HarvestRun.SELECT(table.HarvestRun.AllColumns).
			WHERE(table.HarvestRun.ID.EQ(pg.UUID(runID))).
			QueryContext(context.TODO(), db, &run)
		if errors.Is(err, qrm.ErrNoRows) {
			continue
		}
		require.NoError(t, err, "can't get run")

		if run.FinishedAt != nil {
			return &run
		}
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	if err := channel.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
