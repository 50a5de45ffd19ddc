package ports

import "go.trai.ch/crit/internal/core/domain"

// Fingerprinter defines the interface for digesting scheduling inputs.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a stable digest of everything that affects the report of p.
	Fingerprint(p *domain.Project) string
}
