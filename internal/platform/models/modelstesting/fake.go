package modelstesting

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeSupplier returns models.Supplier with fake data and random number of fake phones and emails.
func FakeSupplier(ops ...func(s *models.Supplier)) models.Supplier {
	supplier := models.Supplier{
		Country: faker.Word(),
		SupplierRow: models.SupplierRow{
			Position:       fmt.Sprint(rand.Intn(500) + 1),
			PlatformRating: faker.Word(),
			Name:           faker.Name(),
			ProfileURL:     faker.URL(),
			Website:        faker.DomainName(),
			Rating:         fmt.Sprintf("%.1f", rand.Float64()*5),
			Reviews:        fmt.Sprint(rand.Intn(1000)),
			Availability:   fmt.Sprintf("%d%%", rand.Intn(101)),
			ResponseTime:   fmt.Sprint(rand.Intn(60)),
		},
		Contacts: FakeContactInfo(),
	}

	for _, op := range ops {
		op(&supplier)
	}

	return supplier
}

// FakeContactInfo returns models.ContactInfo with up to 3 normalized phones and emails.
func FakeContactInfo(ops ...func(c *models.ContactInfo)) models.ContactInfo {
	contacts := models.ContactInfo{
		Website: faker.DomainName(),
		Phones:  fakePhones(),
		Emails:  fakeEmails(),
	}

	for _, op := range ops {
		op(&contacts)
	}

	return contacts
}

// FakePhone returns random normalized phone number.
func FakePhone() string {
	return fmt.Sprintf("79%09d", rand.Intn(1_000_000_000))
}

func fakePhones() []string {
	phones := make([]string, 0, 3)
	for i, n := 0, rand.Intn(4); i < n; i++ {
		phones = append(phones, FakePhone())
	}
	return sortedUniq(phones)
}

func fakeEmails() []string {
	emails := make([]string, 0, 3)
	for i, n := 0, rand.Intn(4); i < n; i++ {
		emails = append(emails, strings.ToLower(faker.Email()))
	}
	return sortedUniq(emails)
}

func sortedUniq(values []string) []string {
	values = lo.Uniq(values)
	sort.Strings(values)
	return values
}
