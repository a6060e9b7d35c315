package discord

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const embedColor = 0x2B8A3E

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Fields      []embedField      `json:"fields,omitempty"`
	Timestamp   string            `json:"timestamp"`
	Color       int               `json:"color"`
	Footer      map[string]string `json:"footer,omitempty"`
}

type payload struct {
	Content string  `json:"content"`
	Embeds  []embed `json:"embeds"`
}

// Send posts the report notification to Discord as a single embed.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	e := embed{
		Title:       truncate(notification.Title, 256),
		Description: truncate(notification.Summary, 4096),
		Fields:      convertSections(notification.Sections),
		Timestamp:   w.now().UTC().Format(time.RFC3339),
		Color:       embedColor,
	}
	if notification.Footer != "" {
		e.Footer = map[string]string{"text": truncate(notification.Footer, 2048)}
	}

	body, err := jsonAPI.Marshal(payload{Embeds: []embed{e}})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	w.logger.Info(ctx, "report sent to discord", "sections", len(e.Fields))
	return nil
}

// Discord allows at most 25 fields per embed.
func convertSections(sections []model.NotificationSection) []embedField {
	if len(sections) == 0 {
		return nil
	}
	if len(sections) > 25 {
		sections = sections[:25]
	}

	result := make([]embedField, 0, len(sections))
	for _, section := range sections {
		result = append(result, embedField{
			Name:   truncate(section.Heading, 256),
			Value:  truncate(section.Body, 1024),
			Inline: section.Inline,
		})
	}
	return result
}

// truncate caps value at limit characters; Discord counts characters, not bytes.
func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
