package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"lacon/internal/unit"
)

func newUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Inspect the unit table used by number suffixes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List unit symbols with their dimension and prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dimName, err := cmd.Flags().GetString("dimension")
			if err != nil {
				return fmt.Errorf("failed to get dimension flag: %w", err)
			}
			filter := unit.DimNone
			if dimName != "" {
				d, ok := unit.ParseDimension(dimName)
				if !ok {
					return fmt.Errorf("unknown dimension %q (known: %s)", dimName, strings.Join(dimensionNames(), ", "))
				}
				filter = d
			}
			return renderUnitTable(cmd.OutOrStdout(), filter)
		},
	}
	list.Flags().String("dimension", "", "only list units of this dimension")

	convert := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two compatible unit suffixes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			out, err := unit.Convert(v, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s = %s%s\n", args[0], args[1], strconv.FormatFloat(out, 'g', -1, 64), args[2])
			return nil
		},
	}

	tree := &cobra.Command{
		Use:   "tree",
		Short: "Dump every suffix accepted by the lexer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, err := cmd.Flags().GetString("prefix")
			if err != nil {
				return fmt.Errorf("failed to get prefix flag: %w", err)
			}
			return dumpUnitTree(cmd.OutOrStdout(), prefix)
		},
	}
	tree.Flags().String("prefix", "", "only show suffixes starting with this text")

	cmd.AddCommand(list, convert, tree)
	return cmd
}

func dimensionNames() []string {
	dims := unit.Dimensions()
	out := make([]string, 0, len(dims))
	for _, d := range dims {
		out = append(out, d.String())
	}
	return out
}

func renderUnitTable(w io.Writer, filter unit.Dimension) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("SYMBOL", "DIMENSION", "PREFIXES", "SCALE", "OFFSET", "MODE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	defs := unit.Units()
	for i := range defs {
		d := &defs[i]
		if filter != unit.DimNone && d.Dimension != filter {
			continue
		}
		t.Row(
			d.Symbol,
			d.Dimension.String(),
			prefixLabel(d),
			strconv.FormatFloat(d.Scale, 'g', -1, 64),
			strconv.FormatFloat(d.Offset, 'g', -1, 64),
			d.Mode.String(),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func prefixLabel(d *unit.Def) string {
	if d.IsCompound() {
		return d.NumGroup.String() + "/" + d.DenGroup.String()
	}
	return d.NumGroup.String()
}

func dumpUnitTree(w io.Writer, prefix string) error {
	var err error
	count := 0
	unit.DefaultTree().Walk(func(suffix string, m unit.Match) bool {
		if !strings.HasPrefix(suffix, prefix) {
			return true
		}
		count++
		_, err = fmt.Fprintf(w, "%-12s %-14s %s\n", suffix, m.Def.Dimension, m.Def.Symbol)
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d suffixes\n", count)
	return err
}
