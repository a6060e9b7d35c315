package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

const maxFeedBytes = 2 << 20

// RSSSource reads an RSS 2.0 feed as one magazine: every item becomes an article by
// the item's dc:creator.
type RSSSource struct {
	url        string
	magazine   string
	category   string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.CatalogSource = (*RSSSource)(nil)

// NewRSSSource builds a feed source publishing into the magazine called magazine.
func NewRSSSource(url, magazine, category string, timeout time.Duration, logger ports.Logger) *RSSSource {
	return &RSSSource{
		url:        url,
		magazine:   magazine,
		category:   category,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Name identifies the source in logs.
func (s *RSSSource) Name() string {
	return "rss:" + s.magazine
}

type rssFeed struct {
	Channel struct {
		Title    string    `xml:"title"`
		Category string    `xml:"category"`
		Items    []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Author  string `xml:"author"`
}

// Populate fetches the feed and submits its items. Items that fail validation are
// skipped; the source only fails when the feed itself cannot be read or no item is usable.
func (s *RSSSource) Populate(ctx context.Context, builder *catalog.Builder) error {
	feed, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	category := s.category
	if category == "" {
		category = strings.TrimSpace(feed.Channel.Category)
	}

	added, skipped := 0, 0
	for _, item := range feed.Channel.Items {
		submission := model.Submission{
			Author:   itemAuthor(item),
			Magazine: s.magazine,
			Category: category,
			Title:    cleanTitle(item.Title),
		}
		if _, err := builder.Submit(submission); err != nil {
			skipped++
			s.logger.Warn(ctx, "skipping feed item", "source", s.Name(), "title", submission.Title, "error", err)
			continue
		}
		added++
	}

	if added == 0 {
		return fmt.Errorf("feed %s: no usable items (%d skipped)", s.url, skipped)
	}

	s.logger.Info(ctx, "feed loaded", "source", s.Name(), "articles", added, "skipped", skipped)
	return nil
}

func (s *RSSSource) fetch(ctx context.Context) (*rssFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml")
	req.Header.Set("User-Agent", "magazine-catalog/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("feed status %d: %s", resp.StatusCode, string(body))
	}

	var feed rssFeed
	decoder := xml.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes))
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return &feed, nil
}

// itemAuthor prefers dc:creator; the RSS author element is usually an email address
// with the name in parentheses.
func itemAuthor(item rssItem) string {
	if creator := strings.TrimSpace(item.Creator); creator != "" {
		return creator
	}
	author := strings.TrimSpace(item.Author)
	if open := strings.Index(author, "("); open != -1 && strings.HasSuffix(author, ")") {
		return strings.TrimSpace(author[open+1 : len(author)-1])
	}
	return author
}
