package fetcher

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nonContentSelectors lists elements to strip before extracting
// visible text.
const nonContentSelectors = "script, style, noscript, iframe, svg"

// whitespaceRe collapses runs of whitespace to a single space.
var whitespaceRe = regexp.MustCompile(`\s+`)

// Document parses raw HTML markup.
func Document(rawHTML string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
}

// VisibleText extracts the human-visible text of a page, joining text
// nodes with spaces so words from adjacent elements never run
// together. The document itself is left untouched so later passes
// still see the full markup.
func VisibleText(doc *goquery.Document) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}

	clone := body.Clone()
	clone.Find(nonContentSelectors).Remove()

	var sb strings.Builder

	for _, node := range clone.Nodes {
		collectText(node, &sb)
	}

	return CleanText(sb.String())
}

// collectText appends every text node under n, space-separated.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}

// CleanText trims and collapses whitespace runs to single spaces.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
