package ports

import "go.trai.ch/crit/internal/core/domain"

// ReportStore defines the interface for caching computed reports by input fingerprint.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report stored under fingerprint.
	// Returns nil, nil if not found.
	Get(fingerprint string) (*domain.Report, error)

	// Put stores the report under its fingerprint.
	Put(report *domain.Report) error

	// Clean removes every cached report.
	Clean() error
}
