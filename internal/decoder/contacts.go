package decoder

import (
	"regexp"
	"slices"
	"strings"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

const contactBlockSelector = "div.fr-panel-body"

var (
	extensionPattern   = regexp.MustCompile(`(?i)(?:доб|ext)\.?\s*\d+`)
	phoneLinePattern   = regexp.MustCompile(`(?i)(?:телефон|mobile|phone|mob\.?):?[\s\x{00A0}]*[+\d\s\x{00A0}\-()]{6,}`)
	phoneNumberPattern = regexp.MustCompile(`\+?\d[\d\s\x{00A0}\-()]{6,}`)
)

// Contacts finds contact block on supplier profile page and extracts contacts from it.
// When block is missing it returns empty contacts and ErrContactBlockNotFound.
func (d *Decoder) Contacts(doc *goquery.Document) (models.ContactInfo, error) {
	block := doc.Find(contactBlockSelector).First()
	if block.Length() == 0 {
		return models.EmptyContactInfo(), ErrContactBlockNotFound
	}

	return ExtractContacts(block), nil
}

// ExtractContacts returns website, phones and emails found in contact block.
// Phones are normalized, emails lower-cased; both are deduplicated and sorted.
func ExtractContacts(block *goquery.Selection) models.ContactInfo {
	contacts := models.EmptyContactInfo()

	if site := block.Find("a[href^='http']").First(); site.Length() > 0 {
		contacts.Website = strippedText(site)
	}

	emails := map[string]struct{}{}
	block.Find("a[href^='mailto']").Each(func(_ int, link *goquery.Selection) {
		if email := strings.TrimSpace(link.Text()); strings.Contains(email, "@") {
			emails[strings.ToLower(email)] = struct{}{}
		}
	})

	phones := map[string]struct{}{}
	addPhone := func(raw string) {
		if phone, ok := NormalizePhone(raw); ok {
			phones[phone] = struct{}{}
		}
	}

	block.Find("a[href^='tel']").Each(func(_ int, link *goquery.Selection) {
		addPhone(stripExtension(strings.TrimSpace(link.Text())))
	})

	for _, line := range strippedStrings(block) {
		if !phoneLinePattern.MatchString(line) {
			continue
		}
		for _, match := range phoneNumberPattern.FindAllString(line, -1) {
			addPhone(match)
		}
	}

	contacts.Phones = sortedKeys(phones)
	contacts.Emails = sortedKeys(emails)

	return contacts
}

// stripExtension drops extension suffix and everything after it.
func stripExtension(phone string) string {
	if loc := extensionPattern.FindStringIndex(phone); loc != nil {
		phone = phone[:loc[0]]
	}
	return strings.TrimSpace(phone)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := lo.Keys(set)
	slices.Sort(keys)
	return keys
}
