package decoder

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// strippedStrings returns trimmed, non-empty text nodes of selection in document order.
// Script and style contents are skipped.
func strippedStrings(sel *goquery.Selection) []string {
	var lines []string
	for _, node := range sel.Nodes {
		collectStrings(node, &lines)
	}
	return lines
}

func collectStrings(node *html.Node, lines *[]string) {
	switch node.Type {
	case html.TextNode:
		if line := strings.TrimSpace(node.Data); line != "" {
			*lines = append(*lines, line)
		}
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if node.DataAtom == atom.Script || node.DataAtom == atom.Style {
			return
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectStrings(child, lines)
	}
}

// strippedText returns stripped strings of selection joined without separator.
func strippedText(sel *goquery.Selection) string {
	return strings.Join(strippedStrings(sel), "")
}

// text returns trimmed text of the first element of selection or empty string when selection is empty.
func text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}

// ResolveURL returns absolute href. Relative hrefs are resolved against baseURL.
func ResolveURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return baseURL + href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return baseURL + href
	}

	return base.ResolveReference(ref).String()
}
