package history

import (
	"context"
	"testing"
	"time"
)

func TestWriter_BatchOnSize(t *testing.T) {
	store := NewMemoryStore()
	w := NewWriter(store, WriterConfig{BatchSize: 3, FlushPeriod: time.Hour})
	defer w.Close()

	for i := 0; i < 3; i++ {
		w.Record(&Record{Source: SourceCLI, Input: "true", OK: true})
	}

	waitFor(t, func() bool {
		recs, _ := store.Query(context.Background(), Filter{})
		return len(recs) == 3
	})
}

func TestWriter_FlushOnClose(t *testing.T) {
	store := NewMemoryStore()
	w := NewWriter(store, WriterConfig{BatchSize: 100, FlushPeriod: time.Hour})

	w.Record(&Record{Source: SourceREPL, Input: `(\neg 1)`, OK: true})
	w.Record(&Record{Source: SourceREPL, Input: "tru", OK: false})

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	recs, err := store.Query(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("Expected 2 records after close, got %d", len(recs))
	}
}

func TestWriter_ExplicitFlush(t *testing.T) {
	store := NewMemoryStore()
	w := NewWriter(store, WriterConfig{BatchSize: 100, FlushPeriod: time.Hour})
	defer w.Close()

	w.Record(&Record{Source: SourceAPI, Input: "false", OK: true})
	if w.Pending() != 1 {
		t.Errorf("Expected 1 pending record, got %d", w.Pending())
	}

	w.Flush()

	waitFor(t, func() bool {
		recs, _ := store.Query(context.Background(), Filter{})
		return len(recs) == 1 && w.Pending() == 0
	})
}

func TestWriter_PeriodicFlush(t *testing.T) {
	store := NewMemoryStore()
	w := NewWriter(store, WriterConfig{BatchSize: 100, FlushPeriod: 10 * time.Millisecond})
	defer w.Close()

	w.Record(&Record{Source: SourceWS, Input: "1", OK: true})

	waitFor(t, func() bool {
		recs, _ := store.Query(context.Background(), Filter{})
		return len(recs) == 1
	})
}

// waitFor polls a condition with a deadline, for the asynchronous flushes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}
