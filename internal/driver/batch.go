// Package driver coordinates parsing of many argv lines against one
// schema. The engine itself is single-shot and synchronous; the driver is
// where concurrency lives.
package driver

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"argscan/internal/flagspec"
	"argscan/internal/scan"
)

// Item is the outcome for one input line.
type Item struct {
	// Line is the 0-based index of the input line.
	Line int
	// Argv is the tokenized line as handed to the engine.
	Argv []string
	// Result of the parse; always set for items returned without error.
	Result *scan.Result
}

// Request describes one batch run.
type Request struct {
	Norm  *flagspec.Normalized
	Lines [][]string
	Opts  scan.Options
	// Jobs caps worker parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-line events; nil means no reporting.
	Progress ProgressSink
}

func (r *Request) sink() ProgressSink {
	if r.Progress == nil {
		return NopSink{}
	}
	return r.Progress
}

// Label renders an argv line for progress displays.
func Label(argv []string) string {
	return strings.Join(argv, " ")
}

// ParseAll parses every line concurrently. Sharing one Normalized across
// workers is safe: the engine never writes into it and each call builds
// its own result state. Results keep input order regardless of worker
// scheduling; индексы уникальны для каждой горутины, мьютекс не нужен.
func ParseAll(ctx context.Context, req *Request) ([]Item, error) {
	sink := req.sink()

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(req.Lines) == 0 {
		return nil, nil
	}
	// Отменённый контекст не должен порождать ни одного события.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, argv := range req.Lines {
		sink.OnEvent(Event{Line: i, Label: Label(argv), Status: StatusQueued})
	}

	results := make([]Item, len(req.Lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Lines)))

	for i, argv := range req.Lines {
		i, argv := i, argv
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			label := Label(argv)
			sink.OnEvent(Event{Line: i, Label: label, Status: StatusWorking})

			res := scan.Parse(req.Norm, argv, req.Opts)

			status := StatusDone
			if !res.OK {
				status = StatusError
			}
			sink.OnEvent(Event{Line: i, Label: label, Status: status, Issues: len(res.Issues)})

			results[i] = Item{Line: i, Argv: argv, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
