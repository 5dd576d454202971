package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every tag, leaving text content only
var stripPolicy = bluemonday.StrictPolicy()

// maxDescriptionLen bounds the derived plain-text description
const maxDescriptionLen = 500

// stripHTML converts feed-provided HTML into plain text suitable for the
// article description column
func stripHTML(s string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(s))
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxDescriptionLen {
		text = text[:maxDescriptionLen]
	}
	return text
}
