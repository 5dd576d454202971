package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// rawFeed holds fields collected by the tolerant streaming parser before
// normalization. RSS and Atom vocabularies are folded together.
type rawFeed struct {
	title       string
	description string
	link        string
	language    string
	items       []rawItem
}

type rawItem struct {
	title       string
	link        string
	guid        string
	content     string
	summary     string
	description string
	author      string
	pubDate     string
	updated     string
	categories  []string
}

// parseTolerant reads a feed with a lenient streaming XML decoder. Unlike the
// standards-compliant primary parse it survives unknown entities, wrong
// charsets, unclosed tags and truncated bodies: whatever items were decoded
// before the stream broke are still returned.
func parseTolerant(r io.Reader) (*rawFeed, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	feed := &rawFeed{}
	var item *rawItem
	var field string
	var inAuthor bool

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// partial content is acceptable as long as something was decoded
			if len(feed.items) > 0 || feed.title != "" {
				break
			}
			return nil, fmt.Errorf("decode feed: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := strings.ToLower(t.Name.Local)
			switch name {
			case "item", "entry":
				item = &rawItem{}
				field = ""
			case "author":
				inAuthor = true
				field = ""
			case "name":
				if inAuthor {
					field = "author"
				}
			case "link":
				// atom links carry the target in the href attribute
				if href := attr(t, "href"); href != "" {
					if item != nil {
						if item.link == "" || attr(t, "rel") == "alternate" {
							item.link = href
						}
					} else if feed.link == "" {
						feed.link = href
					}
					field = ""
					continue
				}
				field = "link"
			case "category":
				if term := attr(t, "term"); term != "" && item != nil {
					item.categories = append(item.categories, term)
					field = ""
					continue
				}
				field = "category"
			case "title", "guid", "id", "description", "summary", "pubdate", "published", "updated", "language", "subtitle":
				field = name
			case "encoded":
				// content:encoded
				field = "content"
			case "content":
				field = "content"
			case "date":
				// dc:date
				field = "pubdate"
			default:
				field = ""
			}

		case xml.EndElement:
			name := strings.ToLower(t.Name.Local)
			switch name {
			case "item", "entry":
				if item != nil {
					feed.items = append(feed.items, *item)
					item = nil
				}
			case "author":
				inAuthor = false
			}
			field = ""

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" || field == "" {
				continue
			}
			if item != nil {
				collectItemField(item, field, text)
			} else {
				collectFeedField(feed, field, text)
			}
		}
	}

	if len(feed.items) == 0 && feed.title == "" {
		return nil, fmt.Errorf("no feed content recognized")
	}
	return feed, nil
}

// collectItemField stores character data into the right item field
func collectItemField(item *rawItem, field, text string) {
	switch field {
	case "title":
		item.title += text
	case "link":
		item.link += text
	case "guid", "id":
		item.guid += text
	case "content":
		item.content += text
	case "summary":
		item.summary += text
	case "description":
		item.description += text
	case "author":
		item.author += text
	case "pubdate", "published":
		item.pubDate += text
	case "updated":
		item.updated += text
	case "category":
		item.categories = append(item.categories, text)
	}
}

// collectFeedField stores character data into the right channel field
func collectFeedField(feed *rawFeed, field, text string) {
	switch field {
	case "title":
		feed.title += text
	case "description", "subtitle":
		feed.description += text
	case "link":
		feed.link += text
	case "language":
		feed.language += text
	}
}

// attr returns the value of a named attribute, empty when absent
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}
