package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lacon/internal/driver"
	"lacon/internal/ui"
)

type dirOutcome struct {
	result *driver.DirResult
	err    error
}

// runTokenizeDirWithUI runs TokenizeDir in the background and renders its
// per-file events with a Bubble Tea progress view on stderr.
func runTokenizeDirWithUI(ctx context.Context, dir string, opts driver.Options) (*driver.DirResult, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{driver.DefaultExtension}
	}
	files, err := driver.ListSourceFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.FileEvent, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		reqOpts := opts
		reqOpts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.TokenizeDir(ctx, dir, reqOpts)
		outcomeCh <- dirOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("tokenize "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// программа могла выйти раньше (ctrl-c): не блокируем воркеров
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
