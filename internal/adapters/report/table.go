package report

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/ui/style"
	"go.trai.ch/zerr"
)

var tableHeader = []string{"", "ID", "Task", "Lead", "Dur", "ES", "EF", "LS", "LF", "Slack", "Wave"}

// TableRenderer writes the schedule as a bordered table with critical tasks highlighted.
type TableRenderer struct{}

// NewTableRenderer creates a new TableRenderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// Render writes r to w.
func (t *TableRenderer) Render(w io.Writer, r *domain.Report) error {
	p := newPalette(w)

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		marker := style.FloatTask
		if row.Critical {
			marker = style.CriticalTask
		}
		rows = append(rows, []string{
			marker,
			row.ID,
			row.Name,
			row.Lead,
			strconv.Itoa(row.Duration),
			strconv.Itoa(row.ES),
			strconv.Itoa(row.EF),
			strconv.Itoa(row.LS),
			strconv.Itoa(row.LF),
			strconv.Itoa(row.Slack),
			strconv.Itoa(row.Wave),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.muted).
		Headers(tableHeader...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := p.plain.Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return p.title.Padding(0, 1)
			case row < len(r.Rows) && r.Rows[row].Critical:
				return p.critical.Padding(0, 1)
			case col >= 4:
				return cell.Align(lipgloss.Right)
			default:
				return cell
			}
		})

	lines := []string{p.heading(r)}
	if len(r.Rows) > 0 {
		lines = append(lines, tbl.Render())
	}
	lines = append(lines, p.summary(r)...)

	if err := writeLines(w, lines...); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", FormatTable)
	}
	return nil
}
