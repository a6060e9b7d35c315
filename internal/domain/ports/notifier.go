package ports

import (
	"context"

	"magazine-catalog/internal/domain/model"
)

// Notifier delivers report notifications to a downstream channel (Discord, console).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
