package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer streams CSV rows to a file or io.Writer. Every row is flushed on
// write so downstream consumers see records as soon as they are produced.
type Writer struct {
	mu        sync.Mutex
	csv       *csv.Writer
	count     int
	closeFunc func() error
}

// NewWriter creates a CSV writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		csv: csv.NewWriter(w),
	}
}

// NewFileWriter creates a CSV writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		csv:       csv.NewWriter(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes and flushes a single CSV row.
func (w *Writer) Write(row []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush row: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of rows written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
