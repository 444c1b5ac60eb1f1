package ingestion

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HTMLSource extracts visible text from .html/.htm resumes, dropping script
// and style content. The document title, or failing that the first top-level
// heading, becomes the name hint.
type HTMLSource struct{}

// Extract implements Source.
func (HTMLSource) Extract(path string) (Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return Document{}, &ExtractionError{Format: "html", Cause: err}
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return Document{}, &ExtractionError{Format: "html", Cause: err}
	}

	return Document{
		Text:     NormalizeNewlines(visibleText(doc)),
		NameHint: htmlNameHint(doc),
	}, nil
}

func htmlNameHint(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if heading := strings.TrimSpace(doc.Find("h1").First().Text()); heading != "" {
		return heading
	}
	return ""
}

// visibleText walks the node tree collecting text nodes, one line per node,
// skipping script and style subtrees.
func visibleText(doc *goquery.Document) string {
	var parts []string
	for _, node := range doc.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
