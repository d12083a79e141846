package app

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/settings"
)

// Components holds everything the command line needs from the wiring.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *settings.Settings

	provider *sdktrace.TracerProvider
}

// NewComponents creates a new Components instance.
func NewComponents(
	app *App,
	logger ports.Logger,
	cfg *settings.Settings,
	provider *sdktrace.TracerProvider,
) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Settings: cfg,
		provider: provider,
	}
}

// Shutdown flushes and stops the trace provider.
func (c *Components) Shutdown(ctx context.Context) error {
	if c.provider == nil {
		return nil
	}
	return c.provider.Shutdown(ctx)
}
