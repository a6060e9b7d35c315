package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultDevToEndpoint is the public dev.to article listing.
const DefaultDevToEndpoint = "https://dev.to/api/articles"

// DevToSource lists dev.to articles for a tag as one magazine whose category is the tag.
type DevToSource struct {
	endpoint   string
	tag        string
	magazine   string
	perPage    int
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.CatalogSource = (*DevToSource)(nil)

// NewDevToSource builds a DevToSource. An empty endpoint selects DefaultDevToEndpoint.
func NewDevToSource(endpoint, tag, magazine string, perPage int, timeout time.Duration, logger ports.Logger) *DevToSource {
	if endpoint == "" {
		endpoint = DefaultDevToEndpoint
	}
	if perPage <= 0 {
		perPage = 30
	}
	return &DevToSource{
		endpoint:   endpoint,
		tag:        tag,
		magazine:   magazine,
		perPage:    perPage,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Name identifies the source in logs.
func (d *DevToSource) Name() string {
	return "devto:" + d.tag
}

// Populate fetches the tag listing and submits each article under its author's name.
func (d *DevToSource) Populate(ctx context.Context, builder *catalog.Builder) error {
	query := url.Values{}
	query.Set("tag", d.tag)
	query.Set("per_page", fmt.Sprint(d.perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload []struct {
		Title string `json:"title"`
		User  struct {
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"user"`
	}

	if err := jsonAPI.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(payload) == 0 {
		return fmt.Errorf("no articles returned for tag %q", d.tag)
	}

	added := 0
	for _, item := range payload {
		author := item.User.Name
		if author == "" {
			author = item.User.Username
		}
		submission := model.Submission{
			Author:   author,
			Magazine: d.magazine,
			Category: d.tag,
			Title:    cleanTitle(item.Title),
		}
		if _, err := builder.Submit(submission); err != nil {
			d.logger.Warn(ctx, "skipping dev.to article", "tag", d.tag, "title", submission.Title, "error", err)
			continue
		}
		added++
	}

	if added == 0 {
		return fmt.Errorf("dev.to tag %q: no usable articles", d.tag)
	}

	d.logger.Info(ctx, "dev.to tag loaded", "tag", d.tag, "articles", added)
	return nil
}
