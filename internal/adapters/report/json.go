package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render writes r to w.
func (j *JSONRenderer) Render(w io.Writer, r *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", FormatJSON)
	}
	return nil
}
