package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfwidget-backend/internal/lighthouse/recommendations"
	"perfwidget-backend/internal/output"
	"perfwidget-backend/internal/widget"
)

const defaultEndpoint = "http://localhost:8080/api/lighthouse"

// errReported marks a failure already shown to the user.
var errReported = errors.New("analysis failed")

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("AUDIT")
	v.AutomaticEnv()
	v.SetDefault("endpoint", defaultEndpoint)
	v.SetDefault("strategy", "desktop")
	v.SetDefault("title", widget.DefaultTitle)
	v.SetDefault("output", output.FormatTable)

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Analyze a website's performance, accessibility, best practices and SEO",
		Long: `audit sends a URL to the analysis endpoint and prints the four category
scores together with recommendations for every failing audit.

A bare host such as example.com is analyzed as https://example.com.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditRun(cmd, v, args[0])
		},
	}

	flags := cmd.Flags()
	flags.String("endpoint", defaultEndpoint, "Analysis endpoint URL")
	flags.String("strategy", "desktop", "Analysis strategy: desktop or mobile")
	flags.String("title", widget.DefaultTitle, "Heading printed above the results")
	flags.String("expand", "", "Only list recommendations for this category (performance, accessibility, best-practices, seo)")
	flags.StringP("output", "o", output.FormatTable, "Output format: table, json or yaml")
	_ = v.BindPFlags(flags)

	return cmd
}

func auditRun(cmd *cobra.Command, v *viper.Viper, rawURL string) error {
	ui := &output.UI{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}

	var expanded recommendations.Category
	if raw := v.GetString("expand"); raw != "" {
		c, ok := recommendations.ParseCategory(raw)
		if !ok {
			return fmt.Errorf("unknown category %q", raw)
		}
		expanded = c
	}

	w := widget.New(widget.NewClient(v.GetString("endpoint")),
		widget.WithTitle(v.GetString("title")),
		widget.WithStrategy(v.GetString("strategy")),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Writer = ui.ErrOut
	s.Suffix = " Analyzing..."
	s.Start()
	summary, err := w.Submit(ctx, rawURL)
	s.Stop()
	if err != nil {
		ui.Alert(err)
		return errReported
	}

	if expanded != "" {
		w.Toggle(expanded)
	}
	current, _ := w.Expanded()
	return ui.Summary(summary, w.Title, current, v.GetString("output"))
}
