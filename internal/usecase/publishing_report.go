package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

const reportFooter = "magazine-catalog publishing report"

// PublishingReport builds a fresh catalog from its source, summarizes it and sends the result.
type PublishingReport struct {
	source      ports.CatalogSource
	notifier    ports.Notifier
	logger      ports.Logger
	maxSections int
	maxTitles   int
}

// PublishingReportConfig controls how much of the catalog ends up in a notification.
type PublishingReportConfig struct {
	MaxSections int
	MaxTitles   int
}

// NewPublishingReport constructs a PublishingReport use case.
func NewPublishingReport(
	source ports.CatalogSource,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg PublishingReportConfig,
) *PublishingReport {
	return &PublishingReport{
		source:      source,
		notifier:    notifier,
		logger:      logger,
		maxSections: cfg.MaxSections,
		maxTitles:   cfg.MaxTitles,
	}
}

// Run executes the report workflow. Each run owns its registry, so concurrent runs share nothing.
func (p *PublishingReport) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info(ctx, "starting publishing report", "source", p.source.Name())

	builder := catalog.NewBuilder(model.NewRegistry())
	if err := p.source.Populate(ctx, builder); err != nil {
		p.logger.Error(ctx, "failed to populate catalog", "error", err)
		return fmt.Errorf("populate catalog: %w", err)
	}

	summary := Summarize(builder.Registry())
	p.logger.Debug(ctx, "catalog summarized",
		"magazines", len(summary.Magazines),
		"authors", len(summary.Authors),
		"articles", summary.Articles,
	)

	if err := p.notifier.Send(ctx, p.buildNotification(summary)); err != nil {
		p.logger.Error(ctx, "failed to send report", "error", err)
		return fmt.Errorf("send report: %w", err)
	}

	p.logger.Info(ctx, "publishing report completed", "duration", time.Since(start))
	return nil
}

func (p *PublishingReport) buildNotification(summary Summary) model.Notification {
	var sections []model.NotificationSection

	for _, magazine := range summary.Magazines {
		sections = append(sections, model.NotificationSection{
			Heading: fmt.Sprintf("%s (%s)", magazine.Name, magazine.Category),
			Body:    p.formatMagazine(magazine),
		})
	}
	if p.maxSections > 0 && len(sections) > p.maxSections-1 {
		sections = sections[:p.maxSections-1]
	}

	if len(summary.Authors) > 0 {
		sections = append(sections, model.NotificationSection{
			Heading: "Authors",
			Body:    formatAuthors(summary.Authors),
		})
	}

	return model.Notification{
		Title:    "Publishing Report",
		Summary:  describe(summary),
		Sections: sections,
		Footer:   reportFooter,
	}
}

func describe(summary Summary) string {
	counts := fmt.Sprintf("%s across %s by %s.",
		plural(summary.Articles, "article"),
		plural(len(summary.Magazines), "magazine"),
		plural(len(summary.Authors), "author"),
	)
	if summary.TopPublisher == nil {
		return "No magazine has published an article yet. " + counts
	}
	top := summary.TopPublisher
	return fmt.Sprintf("**Top publisher:** %s with %s. %s", top.Name, plural(len(top.Titles), "article"), counts)
}

func (p *PublishingReport) formatMagazine(magazine MagazineSummary) string {
	if len(magazine.Titles) == 0 {
		return "_No articles yet._"
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "**Articles:** %d\n", len(magazine.Titles))
	fmt.Fprintf(&builder, "**Contributors:** %s\n", strings.Join(magazine.Contributors, ", "))
	if magazine.ContributingAuthors != nil {
		fmt.Fprintf(&builder, "**Regulars:** %s\n", strings.Join(magazine.ContributingAuthors, ", "))
	}

	titles := magazine.Titles
	if p.maxTitles > 0 && len(titles) > p.maxTitles {
		titles = titles[:p.maxTitles]
	}
	for _, title := range titles {
		fmt.Fprintf(&builder, "• %s\n", title)
	}
	if hidden := len(magazine.Titles) - len(titles); hidden > 0 {
		fmt.Fprintf(&builder, "_…and %d more_\n", hidden)
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func formatAuthors(authors []AuthorSummary) string {
	lines := make([]string, 0, len(authors))
	for _, author := range authors {
		topics := "no magazines"
		if author.TopicAreas != nil {
			topics = strings.Join(author.TopicAreas, ", ")
		}
		lines = append(lines, fmt.Sprintf("**%s** (%s): %s", author.Name, plural(author.Articles, "article"), topics))
	}
	return strings.Join(lines, "\n")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
