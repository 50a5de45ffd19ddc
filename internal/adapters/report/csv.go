package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/zerr"
)

var csvHeader = []string{"id", "name", "lead", "duration", "es", "ef", "ls", "lf", "slack", "critical", "wave"}

// CSVRenderer writes one line per task, suitable for import into spreadsheet and planning tools.
type CSVRenderer struct{}

// NewCSVRenderer creates a new CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes r to w.
func (c *CSVRenderer) Render(w io.Writer, r *domain.Report) error {
	cw := csv.NewWriter(w)

	records := make([][]string, 0, len(r.Rows)+1)
	records = append(records, csvHeader)
	for _, row := range r.Rows {
		records = append(records, []string{
			row.ID,
			row.Name,
			row.Lead,
			strconv.Itoa(row.Duration),
			strconv.Itoa(row.ES),
			strconv.Itoa(row.EF),
			strconv.Itoa(row.LS),
			strconv.Itoa(row.LF),
			strconv.Itoa(row.Slack),
			strconv.FormatBool(row.Critical),
			strconv.Itoa(row.Wave),
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", FormatCSV)
	}
	return nil
}
