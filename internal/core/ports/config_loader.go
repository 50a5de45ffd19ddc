package ports

import "go.trai.ch/crit/internal/core/domain"

// ProjectLoader defines the interface for loading project files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads and validates the project file at path.
	Load(path string) (*domain.Project, error)

	// Discover walks up from cwd and returns the path of the first project file found.
	Discover(cwd string) (string, error)
}
