package feed

import (
	"encoding/xml"
	"fmt"

	"manganovelsfeed/internal/domain"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string  `xml:"title"`
	Link    string  `xml:"link"`
	PubDate string  `xml:"pubDate"`
	GUID    rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RenderRSS serializes a normalized feed as RSS 2.0 XML. Item order is
// preserved from the feed, so the document lists entries newest-first.
func RenderRSS(f domain.Feed) ([]byte, error) {
	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:       f.Title,
			Link:        f.Link,
			Description: f.Description,
			Items:       make([]rssItem, 0, len(f.Items)),
		},
	}

	for _, item := range f.Items {
		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:   item.Title,
			Link:    item.Link,
			PubDate: item.PublishedAt.Format("Mon, 02 Jan 2006 15:04:05 -0700"),
			GUID:    rssGUID{IsPermaLink: true, Value: item.GUID},
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
