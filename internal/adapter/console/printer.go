package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

// Printer writes report notifications as plain text, for runs without a webhook.
type Printer struct {
	out io.Writer
}

var _ ports.Notifier = (*Printer)(nil)

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Send renders the notification.
func (p *Printer) Send(_ context.Context, notification model.Notification) error {
	var b strings.Builder
	b.WriteString(notification.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(notification.Title)))
	b.WriteString("\n")
	if notification.Summary != "" {
		b.WriteString(notification.Summary)
		b.WriteString("\n")
	}
	for _, section := range notification.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n", section.Heading, section.Body)
	}
	if notification.Footer != "" {
		fmt.Fprintf(&b, "\n-- %s\n", notification.Footer)
	}

	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
