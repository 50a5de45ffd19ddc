// Package report renders schedule reports in the supported output formats.
package report

import (
	"maps"
	"slices"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Format names.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatGantt = "gantt"
)

var _ ports.RendererRegistry = (*Registry)(nil)

// Registry resolves renderers by format name.
type Registry struct {
	renderers map[string]ports.Renderer
}

// NewRegistry creates a registry holding every built-in renderer.
func NewRegistry() *Registry {
	return &Registry{
		renderers: map[string]ports.Renderer{
			FormatTable: NewTableRenderer(),
			FormatCSV:   NewCSVRenderer(),
			FormatJSON:  NewJSONRenderer(),
			FormatGantt: NewGanttRenderer(),
		},
	}
}

// Renderer returns the renderer for format.
func (r *Registry) Renderer(format string) (ports.Renderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot render report"), "format", format)
		return nil, zerr.With(err, "supported", r.Formats())
	}
	return renderer, nil
}

// Formats lists the supported format names in alphabetical order.
func (r *Registry) Formats() []string {
	return slices.Sorted(maps.Keys(r.renderers))
}
