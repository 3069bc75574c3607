package main

import (
	"fmt"
	"io"
	"os"

	"lacon/internal/diag"
	"lacon/internal/diagfmt"
	"lacon/internal/source"
)

// printDiagnostics renders bag to w in the --diagnostics format.
func printDiagnostics(w io.Writer, format string, bag *diag.Bag, fs *source.FileSet, colorMode string) error {
	if bag == nil || (bag.Len() == 0 && bag.Dropped() == 0) {
		return nil
	}
	bag.Sort()
	switch format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(colorMode, os.Stderr),
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
	case "short":
		if out := diag.FormatShortDiagnostics(bag.Items(), fs, false); out != "" {
			fmt.Fprintln(w, out)
		}
	case "json":
		if err := diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		}); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown diagnostics format %q (expected pretty|short|json)", format)
	}
	return nil
}
