package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"argscan/internal/driver"
	"argscan/internal/ui"
)

type batchOutcome struct {
	items []driver.Item
	err   error
}

func runBatchWithUI(ctx context.Context, title string, req *driver.Request) ([]driver.Item, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		items, err := driver.ParseAll(ctx, &reqCopy)
		outcomeCh <- batchOutcome{items: items, err: err}
		close(events)
	}()

	labels := make([]string, len(req.Lines))
	for i, argv := range req.Lines {
		labels[i] = driver.Label(argv)
	}

	model := ui.NewProgressModel(title, labels, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := awaitBatchOutcome(events, outcomeCh)
	if uiErr != nil {
		return outcome.items, uiErr
	}
	return outcome.items, outcome.err
}

// awaitBatchOutcome keeps draining progress events after the UI stopped
// reading (quit, ctrl+c, startup failure). Without the drain the driver
// blocks on a full event channel and the outcome never arrives.
func awaitBatchOutcome(events <-chan driver.Event, outcomeCh <-chan batchOutcome) batchOutcome {
	go func() {
		for range events {
		}
	}()
	return <-outcomeCh
}
