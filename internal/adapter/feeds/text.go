package feeds

import (
	"strings"

	"golang.org/x/net/html"
)

// cleanTitle strips markup from a feed title and collapses whitespace.
func cleanTitle(input string) string {
	return strings.Join(strings.Fields(htmlToText(input)), " ")
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" {
			builder.WriteRune(' ')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
