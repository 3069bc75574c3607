package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lacon/internal/project"
)

// loadConfig discovers lacon.toml above target and layers the flags the
// user actually set on top of it.
func loadConfig(cmd *cobra.Command, target string) (project.Config, error) {
	start := target
	if target == "-" {
		start = "."
	}
	cfg, err := project.Discover(start)
	if err != nil {
		return project.Config{}, err
	}

	var o project.Overrides
	flags := cmd.Flags()
	if flags.Changed("doc-comments") {
		v, _ := flags.GetBool("doc-comments")
		o.KeepDocComments = &v
	}
	if flags.Changed("trivia") {
		v, _ := flags.GetBool("trivia")
		o.KeepTrivia = &v
	}
	if flags.Changed("max-token-length") {
		v, _ := flags.GetInt("max-token-length")
		o.MaxTokenLength = &v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		o.Format = &v
	}
	if flags.Changed("jobs") {
		v, _ := flags.GetInt("jobs")
		o.Jobs = &v
	}
	if flags.Changed("ext") {
		o.Extensions, _ = flags.GetStringSlice("ext")
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		o.Color = &v
	}
	if flags.Changed("max-diagnostics") {
		v, _ := flags.GetInt("max-diagnostics")
		o.MaxDiagnostics = &v
	}

	merged, err := cfg.Apply(o)
	if err != nil {
		return project.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return merged, nil
}
