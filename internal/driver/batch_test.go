package driver

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"argscan/internal/flagspec"
	"argscan/internal/scan"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func testNorm(t *testing.T) *flagspec.Normalized {
	t.Helper()
	norm, err := flagspec.Normalize(flagspec.Schema{
		"name": {Type: flagspec.TypeString, Flags: []string{"--name"}, Required: true},
	})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return norm
}

func TestParseAllKeepsInputOrder(t *testing.T) {
	lines := [][]string{
		{"--name", "a"},
		{"--name", "b"},
		{"--bogus"},
		{"--name", "d"},
	}

	items, err := ParseAll(context.Background(), &Request{
		Norm:  testNorm(t),
		Lines: lines,
		Opts:  scan.Options{},
		Jobs:  3,
	})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if len(items) != len(lines) {
		t.Fatalf("Expected %d items, got %d", len(lines), len(items))
	}

	for i, item := range items {
		if item.Line != i {
			t.Errorf("Expected item %d in input order, got line %d", i, item.Line)
		}
		if !reflect.DeepEqual(item.Argv, lines[i]) {
			t.Errorf("Expected argv %v at %d, got %v", lines[i], i, item.Argv)
		}
	}

	if !items[0].Result.OK || items[2].Result.OK {
		t.Error("Expected per-line ok to reflect each parse independently")
	}
	if items[1].Result.Values["name"] != "b" {
		t.Errorf("Expected isolated results per line, got %v", items[1].Result.Values["name"])
	}
}

func TestParseAllEmpty(t *testing.T) {
	items, err := ParseAll(context.Background(), &Request{Norm: testNorm(t)})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if items != nil {
		t.Errorf("Expected nil for empty input, got %v", items)
	}
}

func TestParseAllProgressEvents(t *testing.T) {
	sink := &recordingSink{}
	lines := [][]string{
		{"--name", "a"},
		{"--bogus"},
	}

	_, err := ParseAll(context.Background(), &Request{
		Norm:     testNorm(t),
		Lines:    lines,
		Jobs:     1,
		Progress: sink,
	})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}

	events := sink.snapshot()
	// на строку приходится queued + working + терминальное событие
	if len(events) != 3*len(lines) {
		t.Fatalf("Expected %d events, got %d: %+v", 3*len(lines), len(events), events)
	}

	terminal := make(map[int]Event)
	for _, ev := range events {
		if ev.Status == StatusDone || ev.Status == StatusError {
			terminal[ev.Line] = ev
		}
	}
	if terminal[0].Status != StatusDone {
		t.Errorf("Expected line 0 done, got %v", terminal[0].Status)
	}
	if terminal[1].Status != StatusError || terminal[1].Issues == 0 {
		t.Errorf("Expected line 1 error with issue count, got %+v", terminal[1])
	}
	if terminal[1].Label != "--bogus" {
		t.Errorf("Expected rendered argv label, got %q", terminal[1].Label)
	}
}

func TestParseAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &recordingSink{}
	_, err := ParseAll(ctx, &Request{
		Norm:     testNorm(t),
		Lines:    [][]string{{"--name", "a"}},
		Progress: sink,
	})
	if err == nil {
		t.Fatal("Expected context error")
	}
	if got := sink.snapshot(); len(got) != 0 {
		t.Errorf("Expected no events on a cancelled context, got %v", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Label([]string{"--name", "a b"}); got != "--name a b" {
		t.Errorf("Expected joined label, got %q", got)
	}
	if got := Label(nil); got != "" {
		t.Errorf("Expected empty label for nil argv, got %q", got)
	}
}
