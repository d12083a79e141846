package ports

import "go.trai.ch/fresh/internal/core/domain"

// ConfigLoader defines the interface for loading a project's build file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads filename inside root and returns the project's configuration.
	// Paths in the returned configuration are cleaned but stay relative to root.
	Load(root, filename string) (*domain.Configuration, error)
}
