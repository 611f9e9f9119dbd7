package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"perfwidget-backend/internal/lighthouse"
	"perfwidget-backend/internal/lighthouse/recommendations"
)

// Formats accepted by Summary.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// UI writes colored terminal output.
type UI struct {
	Out    io.Writer
	ErrOut io.Writer
}

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	bold          = color.New(color.Bold).SprintFunc()
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	green         = color.New(color.FgHiGreen).SprintFunc()
	yellow        = color.New(color.FgHiYellow).SprintFunc()
	red           = color.New(color.FgHiRed).SprintFunc()
)

// ScoreColor colors a 0-100 score with the usual good/average/poor bands.
func ScoreColor(score int) string {
	s := fmt.Sprintf("%d", score)
	switch {
	case score >= 90:
		return green(s)
	case score >= 50:
		return yellow(s)
	default:
		return red(s)
	}
}

// ImpactColor colors an impact label.
func ImpactColor(impact recommendations.Impact) string {
	switch impact {
	case recommendations.ImpactHigh:
		return red(string(impact))
	case recommendations.ImpactMedium:
		return yellow(string(impact))
	default:
		return cyan(string(impact))
	}
}

func (u *UI) Info(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", infoPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Success(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Error(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}

// Alert prints a failed analysis. Nothing else is written for that run.
func (u *UI) Alert(err error) {
	u.Error("Analysis failed: %v", err)
}

// Table creates a new tablewriter configured with consistent styling.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}

// Summary renders s in the given format. In table format only the expanded
// category's recommendations are listed; an empty expanded lists all of them.
func (u *UI) Summary(s *lighthouse.ScoreSummary, title string, expanded recommendations.Category, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		return u.summaryTable(s, title, expanded)
	case FormatJSON:
		enc := json.NewEncoder(u.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(u.Out)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (u *UI) summaryTable(s *lighthouse.ScoreSummary, title string, expanded recommendations.Category) error {
	if title != "" {
		fmt.Fprintln(u.Out, bold(title))
	}
	u.Info("%s (%s) at %s", s.URL, s.Strategy, s.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintln(u.Out)

	table := u.Table([]string{"Category", "Score", "Recommendations"})
	for _, c := range recommendations.Categories() {
		if err := table.Append([]string{
			c.Label(),
			ScoreColor(s.Score(c)),
			fmt.Sprintf("%d", len(s.Recommendations.For(c))),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, c := range recommendations.Categories() {
		if expanded != "" && c != expanded {
			continue
		}
		u.recommendationList(c, s.Recommendations.For(c))
	}
	return nil
}

func (u *UI) recommendationList(c recommendations.Category, recs []recommendations.Recommendation) {
	fmt.Fprintln(u.Out)
	fmt.Fprintln(u.Out, bold(c.Label()))
	if len(recs) == 0 {
		u.Success("No recommendations. Great job!")
		return
	}
	for _, r := range recs {
		line := fmt.Sprintf("  [%s] %s", ImpactColor(r.Impact), r.Title)
		if r.DisplayValue != "" {
			line += " " + cyan("("+r.DisplayValue+")")
		}
		fmt.Fprintln(u.Out, line)
		if r.Description != "" {
			fmt.Fprintf(u.Out, "      %s\n", r.Description)
		}
		if r.LearnMoreURL != nil {
			fmt.Fprintf(u.Out, "      Learn more: %s\n", *r.LearnMoreURL)
		}
	}
}
