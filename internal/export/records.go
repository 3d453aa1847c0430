package export

import (
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/samber/lo"
)

const (
	phonesKey = "Телефоны"
	emailsKey = "Email’ы"
	phoneCol  = "Телефон"
	emailCol  = "Email"
)

// field is a single key-value pair of supplier record.
type field struct {
	key   string
	value any
}

// supplierFields returns supplier's record fields in output order.
func supplierFields(s models.Supplier) []field {
	return []field{
		{key: "ID", value: s.ID},
		{key: "Страна", value: s.Country},
		{key: "Номер в таблице", value: s.Position},
		{key: "Рейтинг ABCP", value: s.PlatformRating},
		{key: "Название", value: s.Name},
		{key: "Ссылка", value: s.ProfileURL},
		{key: "Сайт", value: s.Website},
		{key: "Рейтинг (число)", value: s.Rating},
		{key: "Отзывы", value: s.Reviews},
		{key: "Доступность", value: s.Availability},
		{key: "Время ответа (сек)", value: s.ResponseTime},
		{key: "Контактный сайт", value: s.Contacts.Website},
		{key: phonesKey, value: nonNil(s.Contacts.Phones)},
		{key: emailsKey, value: nonNil(s.Contacts.Emails)},
	}
}

// Table converts suppliers into tabular form.
// Phones and emails are spread into numbered columns; their number is the maximum count across suppliers.
func Table(suppliers []models.Supplier) (header []string, rows [][]string) {
	maxPhones := lo.Max(lo.Map(suppliers, func(s models.Supplier, _ int) int { return len(s.Contacts.Phones) }))
	maxEmails := lo.Max(lo.Map(suppliers, func(s models.Supplier, _ int) int { return len(s.Contacts.Emails) }))

	for _, f := range scalarFields(models.Supplier{}) {
		header = append(header, f.key)
	}
	for ix := 1; ix <= maxPhones; ix++ {
		header = append(header, fmt.Sprintf("%s %d", phoneCol, ix))
	}
	for ix := 1; ix <= maxEmails; ix++ {
		header = append(header, fmt.Sprintf("%s %d", emailCol, ix))
	}

	rows = make([][]string, 0, len(suppliers))
	for _, supplier := range suppliers {
		row := make([]string, 0, len(header))
		for _, f := range scalarFields(supplier) {
			row = append(row, fmt.Sprint(f.value))
		}
		row = append(row, padded(supplier.Contacts.Phones, maxPhones)...)
		row = append(row, padded(supplier.Contacts.Emails, maxEmails)...)
		rows = append(rows, row)
	}

	return header, rows
}

func scalarFields(s models.Supplier) []field {
	return lo.Filter(supplierFields(s), func(f field, _ int) bool {
		return f.key != phonesKey && f.key != emailsKey
	})
}

func padded(values []string, size int) []string {
	out := make([]string, size)
	copy(out, values)
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
