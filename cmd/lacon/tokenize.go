package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lacon/internal/diag"
	"lacon/internal/diagfmt"
	"lacon/internal/driver"
	"lacon/internal/project"
	"lacon/internal/source"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file|dir|->",
		Short: "Tokenize Lacon source",
		Long: `Tokenize breaks Lacon source into tokens. A directory is scanned for
source files which are tokenized concurrently; "-" reads standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Bool("doc-comments", false, "emit /// comments as DocComment tokens")
	cmd.Flags().Bool("trivia", false, "attach skipped comments to tokens as leading trivia")
	cmd.Flags().Int("max-token-length", 0, "report lexemes longer than this many bytes (0 = default)")
	cmd.Flags().Int("jobs", 0, "max parallel files in directory mode (0=auto)")
	cmd.Flags().StringSlice("ext", nil, "source file extensions in directory mode (default .lacon)")
	cmd.Flags().String("ui", "auto", "progress view in directory mode (auto|on|off)")
	return cmd
}

type tokenizeRun struct {
	cfg         project.Config
	opts        driver.Options
	diagFormat  string
	out, errOut io.Writer
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadConfig(cmd, target)
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	diagFormat, err := cmd.Root().PersistentFlags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch diagFormat {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json)", diagFormat)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	run := tokenizeRun{
		cfg: cfg,
		opts: driver.Options{
			KeepDocComments: cfg.Lexer.KeepDocComments,
			KeepTrivia:      cfg.Lexer.KeepTrivia,
			MaxTokenLength:  cfg.Lexer.MaxTokenLength,
			MaxDiagnostics:  cfg.Diagnostics.Max,
			Jobs:            cfg.Project.Jobs,
			Extensions:      cfg.Project.Extensions,
			Timings:         timings,
		},
		diagFormat: diagFormat,
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if target == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		res := driver.TokenizeSource(ctx, driver.StdinName, content, run.opts)
		return run.finishFile(res)
	}

	st, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !st.IsDir() {
		res, tokErr := driver.Tokenize(ctx, target, run.opts)
		if tokErr != nil {
			return fmt.Errorf("tokenization failed: %w", tokErr)
		}
		return run.finishFile(res)
	}

	var res *driver.DirResult
	if shouldUseTUI(mode) {
		res, err = runTokenizeDirWithUI(ctx, target, run.opts)
	} else {
		res, err = driver.TokenizeDir(ctx, target, run.opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return run.finishDir(res)
}

func (r tokenizeRun) finishFile(res *driver.TokenizeResult) error {
	var err error
	switch r.cfg.Output.Format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(r.out, res.Tokens, res.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(r.out, res.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(r.out, res.Tokens)
	default:
		err = fmt.Errorf("unknown format: %s", r.cfg.Output.Format)
	}
	if err != nil {
		return err
	}
	return r.report(res.Bag, res.FileSet)
}

func (r tokenizeRun) finishDir(res *driver.DirResult) error {
	switch r.cfg.Output.Format {
	case "pretty":
		printed := false
		for _, f := range res.Files {
			if !f.Loaded {
				continue
			}
			if printed {
				fmt.Fprintln(r.out)
			}
			printed = true
			fmt.Fprintf(r.out, "== %s ==\n", f.Path)
			if err := diagfmt.FormatTokensPretty(r.out, f.Tokens, res.FileSet); err != nil {
				return err
			}
		}
	case "json", "msgpack":
		files := make([]diagfmt.FileTokensOutput, 0, len(res.Files))
		for _, f := range res.Files {
			files = append(files, diagfmt.FileTokensOutput{Path: f.Path, Tokens: diagfmt.BuildTokensOutput(f.Tokens)})
		}
		var err error
		if r.cfg.Output.Format == "json" {
			err = diagfmt.FormatFileTokensJSON(r.out, files)
		} else {
			err = diagfmt.FormatFileTokensMsgpack(r.out, files)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", r.cfg.Output.Format)
	}
	return r.report(res.Bag(r.cfg.Diagnostics.Max), res.FileSet)
}

// report prints diagnostics to stderr and turns errors into exit status 1.
func (r tokenizeRun) report(bag *diag.Bag, fs *source.FileSet) error {
	if err := printDiagnostics(r.errOut, r.diagFormat, bag, fs, r.cfg.Output.Color); err != nil {
		return err
	}
	if bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

