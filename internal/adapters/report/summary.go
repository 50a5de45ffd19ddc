package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/ui/output"
	"go.trai.ch/crit/internal/ui/style"
)

const pathSeparator = " → "

// palette holds the styles shared by the text renderers, bound to one destination.
type palette struct {
	plain    lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
	critical lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile(w))
	return palette{
		plain:    r.NewStyle(),
		title:    r.NewStyle().Bold(true).Foreground(style.Accent),
		muted:    r.NewStyle().Foreground(style.Muted),
		critical: r.NewStyle().Bold(true).Foreground(style.Critical),
		ok:       r.NewStyle().Foreground(style.OnTrack),
		warn:     r.NewStyle().Foreground(style.Float),
	}
}

// heading renders the project heading line.
func (p palette) heading(r *domain.Report) string {
	line := p.title.Render(r.Project.Name)
	if r.Project.Description != "" {
		line += p.muted.Render(" · " + r.Project.Description)
	}
	if r.Cached {
		line += p.muted.Render(" (cached)")
	}
	return line
}

// summary renders duration, deadline, budget and critical path lines.
func (p palette) summary(r *domain.Report) []string {
	unit := r.Project.Unit
	lines := []string{fmt.Sprintf("Duration: %d %s", r.Duration, unit)}

	if r.Deadline > 0 {
		if r.Overran() {
			lines = append(lines, p.critical.Render(fmt.Sprintf("%s Deadline: %d %s, overrun by %d %s",
				style.Cross, r.Deadline, unit, r.Overrun, unit)))
		} else {
			lines = append(lines, p.ok.Render(fmt.Sprintf("%s Deadline: %d %s, %d %s to spare",
				style.Check, r.Deadline, unit, r.Deadline-r.Duration, unit)))
		}
	}

	if r.Project.Budget > 0 {
		lines = append(lines, "Budget: "+strconv.FormatFloat(r.Project.Budget, 'f', -1, 64))
	}

	switch len(r.CriticalPaths) {
	case 0:
	case 1:
		lines = append(lines, "Critical path: "+p.critical.Render(strings.Join(r.CriticalPaths[0], pathSeparator)))
	default:
		lines = append(lines, "Critical paths:")
		for _, path := range r.CriticalPaths {
			lines = append(lines, "  "+p.critical.Render(strings.Join(path, pathSeparator)))
		}
	}

	return lines
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
