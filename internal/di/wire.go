//go:build wireinject

package di

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/wire"

	"magazine-catalog/internal/adapter/console"
	"magazine-catalog/internal/adapter/discord"
	"magazine-catalog/internal/adapter/feeds"
	"magazine-catalog/internal/adapter/logging"
	"magazine-catalog/internal/adapter/seed"
	"magazine-catalog/internal/app"
	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/ports"
	"magazine-catalog/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideCatalogSource,
		provideNotifier,
		providePublishingReportConfig,
		usecase.NewPublishingReport,
		wire.Bind(new(app.Job), new(*usecase.PublishingReport)),
		provideAppOptions,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	return slog.New(handler)
}

func provideCatalogSource(cfg *config.Config, logger ports.Logger) ports.CatalogSource {
	sources := make([]ports.CatalogSource, 0, 1+len(cfg.Feeds)+len(cfg.DevTo))
	if cfg.SeedPath != "" {
		sources = append(sources, seed.NewFileSource(cfg.SeedPath, logger))
	}
	for _, feed := range cfg.Feeds {
		sources = append(sources, feeds.NewRSSSource(feed.URL, feed.Magazine, feed.Category, cfg.RequestTimeout, logger))
	}
	for _, devto := range cfg.DevTo {
		sources = append(sources, feeds.NewDevToSource(devto.Endpoint, devto.Tag, devto.Magazine, devto.PerPage, cfg.RequestTimeout, logger))
	}
	return feeds.NewCompositeSource(logger, sources...)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return console.NewPrinter(os.Stdout)
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func providePublishingReportConfig(cfg *config.Config) usecase.PublishingReportConfig {
	return usecase.PublishingReportConfig{
		MaxSections: cfg.MaxSections,
		MaxTitles:   cfg.MaxTitles,
	}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Schedule:   cfg.Schedule,
		RunOnce:    cfg.RunOnce,
		JobTimeout: 2 * cfg.RequestTimeout * time.Duration(1+len(cfg.Feeds)+len(cfg.DevTo)),
	}
}
