package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/normdist/internal/estimate"
	"github.com/mwiater/normdist/internal/simulate"
)

var (
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	ngStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
)

// Verdict renders an interval followed by a coloured OK or NG.
func Verdict(res estimate.Result) string {
	v := okStyle.Render(res.Verdict())
	if !res.Covered {
		v = ngStyle.Render(res.Verdict())
	}
	return fmt.Sprintf("%s %s", res.Interval, v)
}

// Table renders rows as an aligned two-column block under a header.
func Table(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n")
	for _, r := range rows {
		b.WriteString("  " + labelStyle.Render(r[0]+strings.Repeat(" ", width-len(r[0])+2)) + r[1] + "\n")
	}
	return b.String()
}

// Summary renders the outcome of a coverage run.
func Summary(res simulate.SuiteResult) string {
	s := res.Summary
	consistent := okStyle.Render("consistent")
	if !s.Consistent() {
		consistent = ngStyle.Render("inconsistent")
	}
	return Table(fmt.Sprintf("coverage of %s (%s, n=%d)", res.Config.Target, res.Config.Column, res.Config.SampleSize), [][2]string{
		{"trials", fmt.Sprintf("%d", s.Trials)},
		{"covered", fmt.Sprintf("%d", s.Covered)},
		{"rate", fmt.Sprintf("%.4f  [%.4f, %.4f]  %s with %.2f", s.Rate, s.RateLower, s.RateUpper, consistent, s.Level)},
		{"truth", fmt.Sprintf("%g", s.Truth)},
		{"width mean±std", fmt.Sprintf("%.4f ± %.4f", s.WidthMean, s.WidthStd)},
		{"width p50/p95", fmt.Sprintf("%.4f / %.4f", s.WidthP50, s.WidthP95)},
		{"elapsed", res.Elapsed.Round(time.Millisecond).String()},
	})
}
