package ports

import (
	"io"

	"go.trai.ch/crit/internal/core/domain"
)

//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// Renderer writes a report in one output format.
type Renderer interface {
	// Render writes r to w.
	Render(w io.Writer, r *domain.Report) error
}

// RendererRegistry resolves renderers by format name.
type RendererRegistry interface {
	// Renderer returns the renderer for format.
	// It returns domain.ErrUnsupportedFormat for unknown names.
	Renderer(format string) (Renderer, error)

	// Formats lists the supported format names.
	Formats() []string
}
