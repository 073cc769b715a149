package internal

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

func WalkNodes(node *html.Node, fn func(*html.Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		WalkNodes(child, fn)
	}
}

// FindElementByTag returns the first element named tagName in document order.
func FindElementByTag(doc *html.Node, tagName string) *html.Node {
	var result *html.Node
	WalkNodes(doc, func(n *html.Node) bool {
		if result != nil {
			return false
		}
		if n.Type == html.ElementNode && n.Data == tagName {
			result = n
			return false
		}
		return true
	})
	return result
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Elements that break the text flow. Their boundaries separate words.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"footer": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// GetTextContent flattens the visible text below node to one line. Block
// elements and <br> separate words, inline elements do not, and every
// whitespace run in the result collapses to a single space.
func GetTextContent(node *html.Node) string {
	var sb strings.Builder
	sb.Grow(builderInitialSize)
	writeText(&sb, node)
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(sb.String(), " "))
}

func writeText(sb *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte(' ')
	}
}

// ValidateDepth fails with ErrMaxDepthExceeded when the tree below n is
// nested deeper than maxDepth. A non-positive maxDepth disables the check.
func ValidateDepth(n *html.Node, maxDepth int) error {
	if maxDepth <= 0 {
		return nil
	}
	return validateDepth(n, 0, maxDepth)
}

func validateDepth(n *html.Node, depth, maxDepth int) error {
	if depth > maxDepth {
		return ErrMaxDepthExceeded
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := validateDepth(c, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}
