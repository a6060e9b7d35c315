package ports

import (
	"context"

	"magazine-catalog/internal/domain/catalog"
)

// CatalogSource contributes authors, magazines and articles to a catalog being built.
type CatalogSource interface {
	Name() string
	Populate(ctx context.Context, builder *catalog.Builder) error
}
