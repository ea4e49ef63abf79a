package driver

import (
	"context"
	"sync"
	"testing"
)

// recordingSink собирает события; ExpandDir шлёт их из нескольких горутин.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) forFile(path string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, ev := range s.events {
		if ev.File == path {
			out = append(out, ev)
		}
	}
	return out
}

func TestExpandDirEmitsProgress(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.fl", "let a: int = 1;\n")
	bad := writeFile(t, dir, "b.fl", "let b: int = ;\n")

	sink := &recordingSink{}
	results, err := ExpandDir(context.Background(), dir, ExpandOptions{Progress: sink}, 2)
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	goodEvents := sink.forFile(good)
	if len(goodEvents) == 0 {
		t.Fatal("no events for the good file")
	}
	if first := goodEvents[0]; first.Stage != StageLoad || first.Status != StatusWorking {
		t.Errorf("first event = %+v, want load/working", first)
	}
	if last := goodEvents[len(goodEvents)-1]; last.Stage != StagePrint || last.Status != StatusDone {
		t.Errorf("last event = %+v, want print/done", last)
	}

	badEvents := sink.forFile(bad)
	if len(badEvents) == 0 {
		t.Fatal("no events for the bad file")
	}
	if last := badEvents[len(badEvents)-1]; last.Status != StatusError {
		t.Errorf("last event = %+v, want an error status", last)
	}
}

func TestExpandEmitsCachedStatus(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.fl", "let x: int = 1;\n")
	opts := ExpandOptions{Cache: testCache(t)}

	if _, err := Expand(path, opts); err != nil {
		t.Fatal(err)
	}

	sink := &recordingSink{}
	opts.Progress = sink
	res, err := Expand(path, opts)
	if err != nil || !res.Cached {
		t.Fatalf("warm run: err=%v cached=%v", err, res != nil && res.Cached)
	}
	events := sink.forFile(path)
	if len(events) == 0 {
		t.Fatal("cache hit must still report progress")
	}
	if last := events[len(events)-1]; last.Status != StatusCached {
		t.Errorf("last event = %+v, want cached", last)
	}
}

func TestChannelSink(t *testing.T) {
	// nil-канал просто глотает события
	ChannelSink{}.OnEvent(Event{File: "x"})

	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a.fl", Stage: StagePrint, Status: StatusDone})
	ev := <-ch
	if ev.File != "a.fl" || ev.Status != StatusDone {
		t.Errorf("forwarded event = %+v", ev)
	}
}
