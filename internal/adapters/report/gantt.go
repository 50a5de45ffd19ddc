package report

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/ui/style"
	"go.trai.ch/zerr"
)

// maxChartWidth is the widest bar area in cells before time units are grouped.
const maxChartWidth = 60

// GanttRenderer draws one bar per task from ES to EF, followed by its slack up to LF.
type GanttRenderer struct {
	width int
}

// NewGanttRenderer creates a new GanttRenderer.
func NewGanttRenderer() *GanttRenderer {
	return &GanttRenderer{width: maxChartWidth}
}

// Render writes r to w.
func (g *GanttRenderer) Render(w io.Writer, r *domain.Report) error {
	p := newPalette(w)

	scale := max(1, (r.Duration+g.width-1)/g.width)
	cells := (r.Duration + scale - 1) / scale

	labelWidth := 0
	for _, row := range r.Rows {
		labelWidth = max(labelWidth, len([]rune(row.ID)))
	}

	lines := []string{p.heading(r)}
	if scale > 1 {
		lines = append(lines, p.muted.Render(fmt.Sprintf("1 cell = %d %s", scale, r.Project.Unit)))
	}

	for _, row := range r.Rows {
		marker := style.FloatTask
		label := p.plain
		if row.Critical {
			marker = style.CriticalTask
			label = p.critical
		}

		var line strings.Builder
		for run := range runs(row, cells, scale) {
			glyphs := strings.Repeat(run.kind.glyph(), run.length)
			switch run.kind {
			case cellBar:
				line.WriteString(label.Render(glyphs))
			case cellSlack:
				line.WriteString(p.warn.Render(glyphs))
			default:
				line.WriteString(p.muted.Render(glyphs))
			}
		}

		annotation := fmt.Sprintf("%d-%d", row.ES, row.EF)
		if row.Slack > 0 {
			annotation += fmt.Sprintf(" (slack %d)", row.Slack)
		}

		lines = append(lines, fmt.Sprintf("%s %s │%s│ %s",
			marker,
			label.Render(padRight(row.ID, labelWidth)),
			line.String(),
			p.muted.Render(annotation),
		))
	}

	lines = append(lines, p.summary(r)...)

	if err := writeLines(w, lines...); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", FormatGantt)
	}
	return nil
}

type cellKind int

const (
	cellGap cellKind = iota
	cellBar
	cellSlack
)

func (k cellKind) glyph() string {
	switch k {
	case cellBar:
		return style.BarCell
	case cellSlack:
		return style.FloatCell
	default:
		return style.IdleCell
	}
}

type run struct {
	kind   cellKind
	length int
}

// runs yields consecutive cells of the same kind. A cell covers [i*scale, (i+1)*scale) and
// shows a bar when it overlaps [ES, EF), or slack when it overlaps [EF, LF).
func runs(row domain.ReportRow, cells, scale int) iter.Seq[run] {
	return func(yield func(run) bool) {
		cur := run{}
		for i := range cells {
			from, to := i*scale, (i+1)*scale
			kind := cellGap
			switch {
			case from < row.EF && to > row.ES:
				kind = cellBar
			case from < row.LF && to > row.EF:
				kind = cellSlack
			}

			if cur.length > 0 && cur.kind != kind {
				if !yield(cur) {
					return
				}
				cur = run{}
			}
			cur.kind = kind
			cur.length++
		}
		if cur.length > 0 {
			yield(cur)
		}
	}
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
