package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lacon/internal/version"
)

// errDiagnostics signals that diagnostics were already printed and the
// process must exit with status 1 without further output.
var errDiagnostics = errors.New("diagnostics reported errors")

var rootCmd = newRootCmd()

// traceCleanup flushes the tracer and stops the profilers set up in
// PersistentPreRunE. It runs after Execute, since PersistentPostRun is
// skipped when RunE fails.
var traceCleanup = func() {}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lacon",
		Short: "Lacon configuration language front end",
		Long:  `lacon tokenizes Lacon sources and inspects the unit table used by number suffixes`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cmd.Root().PersistentFlags().GetString("color")
			if err != nil {
				return fmt.Errorf("failed to get color flag: %w", err)
			}
			if err := validateColorMode(mode); err != nil {
				return err
			}
			color.NoColor = !useColor(mode, os.Stdout)

			stopProfiling, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			cleanup, err := setupTracing(cmd)
			if err != nil {
				stopProfiling()
				return err
			}
			traceCleanup = func() {
				cleanup()
				stopProfiling()
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Version = version.Version

	// Глобальные флаги
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("timings", false, "show timing information")
	cmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	cmd.PersistentFlags().String("diagnostics", "pretty", "diagnostics format (pretty|short|json)")
	cmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	cmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	cmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newUnitsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// main executes the root command and maps failures to exit status 1.
func main() {
	err := rootCmd.Execute()
	traceCleanup()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func validateColorMode(mode string) error {
	switch mode {
	case "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func useColor(mode string, f *os.File) bool {
	return mode == "on" || (mode == "auto" && isTerminal(f))
}
