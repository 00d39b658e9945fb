package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/reignstats/reignstats/internal/analytics"
)

// Renderer writes a report to w.
type Renderer interface {
	Render(w io.Writer, rep *analytics.Report) error
}

// Color modes accepted by NewText.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// noHouse labels records that carry no house.
const noHouse = "(no house)"

// Text renders the five statistics as numbered lines.
type Text struct {
	color string
}

// NewText returns a Text renderer using the given color mode.
func NewText(color string) *Text {
	return &Text{color: color}
}

// Render writes one line per statistic.
func (t *Text) Render(w io.Writer, rep *analytics.Report) error {
	s := t.styles(w)

	lines := []string{
		s.line(1, "Number of monarchs", fmt.Sprintf("%d", rep.Count)),
	}

	if r := rep.LongestReign; r.Available {
		lines = append(lines, s.line(2, "Monarch with the longest reign", s.years(r.Name, r.Years, "years")))
	} else {
		lines = append(lines, s.missing(2, "Longest reign information is not available."))
	}

	if h := rep.LongestHouse; h.Available {
		lines = append(lines, s.line(3, "House with the longest rule", s.years(houseLabel(h.House), h.Years, "years")))
	} else {
		lines = append(lines, s.missing(3, "House information is not available."))
	}

	if n := rep.CommonFirstName; n.Available {
		lines = append(lines, s.line(4, "Most common first name", s.years(n.Name, n.Count, "occurrences")))
	} else {
		lines = append(lines, s.missing(4, "First name information is not available."))
	}

	if h := rep.CurrentHouse; h.Available {
		lines = append(lines, s.line(5, "Current monarch's house", s.years(h.House, h.Years, "years in total")))
	} else {
		lines = append(lines, s.missing(5, "Current monarch or house information is not available."))
	}

	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return fmt.Errorf("render: write text: %w", err)
		}
	}
	return nil
}

// styles binds the Lip Gloss styles to a renderer for w.
func (t *Text) styles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	switch t.color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return textStyles{
		ordinal: r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		value:   r.NewStyle().Bold(true),
		detail:  r.NewStyle().Foreground(lipgloss.Color("42")),
		muted:   r.NewStyle().Faint(true),
	}
}

type textStyles struct {
	ordinal, value, detail, muted lipgloss.Style
}

func (s textStyles) line(n int, label, value string) string {
	return s.ordinal.Render(fmt.Sprintf("%d.", n)) + " " + label + ": " + value
}

func (s textStyles) years(subject string, n int, unit string) string {
	return s.value.Render(subject) + " " + s.detail.Render(fmt.Sprintf("(%d %s)", n, unit))
}

func (s textStyles) missing(n int, msg string) string {
	return s.ordinal.Render(fmt.Sprintf("%d.", n)) + " " + s.muted.Render(msg)
}

func houseLabel(house string) string {
	if house == "" {
		return noHouse
	}
	return house
}

// JSON renders the report as indented JSON.
type JSON struct{}

// Render writes rep followed by a newline.
func (JSON) Render(w io.Writer, rep *analytics.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}
	return nil
}
