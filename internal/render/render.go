// Package render formats encoder, matcher, arbitration, and cache results
// for terminal output, plus a JSON form for machine consumers.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitesmith/sitesmith/internal/cache"
	"github.com/sitesmith/sitesmith/internal/hybrid"
	"github.com/sitesmith/sitesmith/internal/template"
	"github.com/sitesmith/sitesmith/internal/toon"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#7C3AED") // violet
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	accentStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	errStyle      = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	notationStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// JSON pretty-prints any result value for machine consumers.
func JSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// Encoding formats an encoder result: the notation in a box, then method,
// confidence, and any warnings.
func Encoding(e *toon.Encoding) string {
	var b strings.Builder

	b.WriteString(notationStyle.Render(accentStyle.Render(e.Notation)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("method    "), string(e.Method))
	fmt.Fprintf(&b, "  %s %s %s\n",
		dimStyle.Render("confidence"),
		confidenceBar(e.Confidence, 20),
		confidenceStyle(e.Confidence).Render(fmt.Sprintf("%.2f", e.Confidence)),
	)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("spec      "), dimStyle.Render(toon.Describe(&e.Spec)))

	for _, w := range e.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("warn"), dimStyle.Render(w))
	}

	return b.String()
}

// DecodeResult formats a decoder result with its errors and warnings.
func DecodeResult(r *toon.Result) string {
	var b strings.Builder

	status := okStyle.Render("valid")
	if !r.Valid {
		status = errStyle.Render("invalid")
	}
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Decode"), status)
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(toon.Describe(&r.Spec)))

	for _, e := range r.Errors {
		fmt.Fprintf(&b, "    %s %s\n", errStyle.Render("error"), dimStyle.Render(e))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("warn "), dimStyle.Render(w))
	}

	return b.String()
}

// Matches formats a scored match list, best first.
func Matches(matches []template.Match) string {
	if len(matches) == 0 {
		return "  " + dimStyle.Render("No matching templates.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Template Matches") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	for _, m := range matches {
		name := padRight(m.Template.ID, 24)
		bar := confidenceBar(m.Score/100, 20)
		score := confidenceStyle(m.Confidence).Render(fmt.Sprintf("%5.1f", m.Score))
		conf := dimStyle.Render(fmt.Sprintf("conf %.2f", m.Confidence))
		fmt.Fprintf(&b, "  %s %s %s  %s\n", titleStyle.Render(name), bar, score, conf)
	}

	return b.String()
}

// Decision formats an arbitration decision.
func Decision(d hybrid.Decision) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("method"), methodStyle(d.Method).Render(string(d.Method)))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("reason"), d.Reason)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("cost  "), dimStyle.Render(fmt.Sprintf("~$%.2f", d.EstimatedCost)))
	if d.Match != nil {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("match "), d.Match.Template.ID)
	}

	return b.String()
}

// GenerationResult formats the outcome of a generation run. The code itself
// is written separately by the caller.
func GenerationResult(r *hybrid.Result, cached bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s", dimStyle.Render("method"), methodStyle(r.Method).Render(string(r.Method)))
	if cached {
		fmt.Fprintf(&b, " %s", okStyle.Render("(cached)"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s $%.4f\n", dimStyle.Render("cost  "), r.Cost)
	if r.TemplateUsed != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("base  "), r.TemplateUsed)
	}
	if r.Usage.InputTokens+r.Usage.OutputTokens > 0 {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("tokens"),
			dimStyle.Render(fmt.Sprintf("%d in / %d out", r.Usage.InputTokens, r.Usage.OutputTokens)))
	}

	savings := hybrid.CalculateSavings(r.Method)
	if savings.SavedCost > 0 {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("saved "),
			okStyle.Render(fmt.Sprintf("$%.2f (%.0f%%) vs full AI", savings.SavedCost, savings.SavedPercent)))
	}

	return b.String()
}

// CacheStats formats hit/miss counters.
func CacheStats(s cache.Stats) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Cache") + "\n")
	fmt.Fprintf(&b, "  %s %d\n", dimStyle.Render("hits    "), s.Hits)
	fmt.Fprintf(&b, "  %s %d\n", dimStyle.Render("misses  "), s.Misses)
	fmt.Fprintf(&b, "  %s %s %s\n",
		dimStyle.Render("hit rate"),
		confidenceBar(s.HitRate, 20),
		confidenceStyle(s.HitRate).Render(fmt.Sprintf("%.0f%%", s.HitRate*100)),
	)

	return b.String()
}

// TemplateList formats the template catalog.
func TemplateList(templates []template.Template) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Templates") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	indent := strings.Repeat(" ", 24)
	for _, t := range templates {
		fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render(padRight(t.ID, 24)), dimStyle.Render(t.Name))
		fmt.Fprintf(&b, "  %s  %s\n", indent, faintStyle.Render(toon.Describe(&t.Spec)))
		if len(t.Tags) > 0 {
			fmt.Fprintf(&b, "  %s  %s\n", indent, faintStyle.Render(strings.Join(t.Tags, ", ")))
		}
	}

	return b.String()
}

func confidenceBar(v float64, width int) string {
	filled := int(v * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	color := confidenceColor(v)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", width-filled))
	return filledStr + emptyStr
}

func confidenceColor(v float64) lipgloss.Color {
	switch {
	case v >= 0.8:
		return success
	case v >= 0.6:
		return warning
	default:
		return danger
	}
}

func confidenceStyle(v float64) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(confidenceColor(v))
}

func methodStyle(m hybrid.Method) lipgloss.Style {
	switch m {
	case hybrid.MethodTemplate:
		return lipgloss.NewStyle().Bold(true).Foreground(success)
	case hybrid.MethodHybrid:
		return lipgloss.NewStyle().Bold(true).Foreground(warning)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(accent)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
