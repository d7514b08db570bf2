package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under node in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// TrimmedText is the text of a single node with surrounding whitespace
// removed.
func TrimmedText(node *html.Node) string {
	return strings.TrimSpace(GetText(node))
}

// LowerText is TrimmedText, lowercased.
func LowerText(node *html.Node) string {
	return strings.ToLower(TrimmedText(node))
}

type Anchor struct {
	Name string
	Href string
}

// FirstAnchor returns the first <a> under sel with its text trimmed as the
// name.
func FirstAnchor(sel *goquery.Selection) (Anchor, bool) {
	a := sel.Find("a").First()
	if a.Length() == 0 {
		return Anchor{}, false
	}
	return Anchor{
		Name: TrimmedText(a.Get(0)),
		Href: a.AttrOr("href", ""),
	}, true
}
