package feeds

import (
	"context"
	"errors"
	"fmt"

	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/ports"
)

// CompositeSource runs several sources against the same builder, in order.
type CompositeSource struct {
	logger  ports.Logger
	sources []ports.CatalogSource
}

var _ ports.CatalogSource = (*CompositeSource)(nil)

// NewCompositeSource constructs a source that populates from the given sources sequentially.
func NewCompositeSource(logger ports.Logger, sources ...ports.CatalogSource) *CompositeSource {
	active := make([]ports.CatalogSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			active = append(active, s)
		}
	}
	return &CompositeSource{
		logger:  logger,
		sources: active,
	}
}

// Name identifies the source in logs.
func (c *CompositeSource) Name() string {
	return fmt.Sprintf("composite(%d)", len(c.sources))
}

// Populate keeps going when a source fails and only reports an error when every source failed.
func (c *CompositeSource) Populate(ctx context.Context, builder *catalog.Builder) error {
	var errs []error
	for _, source := range c.sources {
		if err := source.Populate(ctx, builder); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", source.Name(), err))
			c.logger.Error(ctx, "catalog source failed", "source", source.Name(), "error", err)
			continue
		}
	}

	if len(c.sources) > 0 && len(errs) == len(c.sources) {
		return errors.Join(errs...)
	}
	return nil
}
