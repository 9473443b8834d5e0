package history

import (
	"context"
	"sync"
	"time"
)

// Writer is a batched asynchronous recorder in front of a Store. Records
// are buffered and flushed to the store in batches, either when the
// buffer fills, on a fixed period, or on an explicit Flush. The caller's
// parse path never blocks on storage.
type Writer struct {
	store       Store
	batchSize   int
	flushPeriod time.Duration

	buffer   []*Record
	bufferMu sync.Mutex
	flushCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// WriterConfig holds configuration for the history writer
type WriterConfig struct {
	BatchSize   int           // Records per batch (default: 100)
	FlushPeriod time.Duration // How often to flush (default: 5s)
}

// DefaultWriterConfig returns the default configuration
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:   100,
		FlushPeriod: 5 * time.Second,
	}
}

// NewWriter creates a batched writer in front of the given store
func NewWriter(store Store, cfg WriterConfig) *Writer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = 5 * time.Second
	}

	w := &Writer{
		store:       store,
		batchSize:   cfg.BatchSize,
		flushPeriod: cfg.FlushPeriod,
		buffer:      make([]*Record, 0, cfg.BatchSize),
		flushCh:     make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}

	go w.flushWorker()

	return w
}

// Record buffers one parse record. A full buffer triggers a flush without
// blocking the caller.
func (w *Writer) Record(rec *Record) {
	fill(rec)

	w.bufferMu.Lock()
	w.buffer = append(w.buffer, rec)
	shouldFlush := len(w.buffer) >= w.batchSize
	w.bufferMu.Unlock()

	if shouldFlush {
		select {
		case w.flushCh <- struct{}{}:
		default:
		}
	}
}

// Flush requests an immediate flush of the buffer
func (w *Writer) Flush() {
	select {
	case w.flushCh <- struct{}{}:
	default:
	}
}

// Pending returns the number of buffered, not yet flushed records
func (w *Writer) Pending() int {
	w.bufferMu.Lock()
	defer w.bufferMu.Unlock()
	return len(w.buffer)
}

// flushWorker drains the buffer on period ticks, flush requests, and
// shutdown
func (w *Writer) flushWorker() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			w.flush()
			return
		case <-w.flushCh:
			w.flush()
		case <-ticker.C:
			w.flush()
		}
	}
}

// flush writes the buffered records to the store in one batch
func (w *Writer) flush() {
	w.bufferMu.Lock()
	if len(w.buffer) == 0 {
		w.bufferMu.Unlock()
		return
	}

	recs := make([]*Record, len(w.buffer))
	copy(recs, w.buffer)
	w.buffer = w.buffer[:0]
	w.bufferMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// A failed batch is dropped; parse results were already delivered to
	// the caller, the history record is best effort.
	w.store.SaveBatch(ctx, recs)
}

// Close performs a final flush and stops the worker. The underlying
// store is not closed; the owner closes it separately.
func (w *Writer) Close() error {
	close(w.stopCh)
	<-w.doneCh
	return nil
}
