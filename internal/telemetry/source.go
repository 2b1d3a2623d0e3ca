// Package telemetry supplies user contexts to the adaptation pipeline.
// Production deployments plug in a real device/telemetry adapter; the
// fixture source stands in wherever no live signal exists.
package telemetry

import (
	"context"

	"adaptiveui/internal/model"
)

// Source collects the current context for a user.
type Source interface {
	Collect(ctx context.Context, userID int64) (*model.Context, error)
}
