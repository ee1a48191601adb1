// Copyright (c) 2025 The itembench Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package perflog persists per-request performance records as an
// append-only newline-delimited JSON log.
package perflog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// Recorder appends, reads, and truncates the performance log. Appends
// are a single write of one newline-terminated record under a mutex,
// so concurrent requests never interleave partial lines.
type Recorder struct {
	appFs  afero.Fs
	logger *slog.Logger
	path   string

	mu sync.Mutex
}

// New creates a Recorder backed by the log file at path.
func New(
	appFs afero.Fs,
	logger *slog.Logger,
	path string,
) *Recorder {
	return &Recorder{
		appFs:  appFs,
		logger: logger,
		path:   path,
	}
}

// Append marshals record and appends it to the log as one line. The
// file is opened in append mode per call, so a truncate between
// appends is always observed.
func (r *Recorder) Append(
	record Record,
) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	line := append(data, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.appFs.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening performance log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}

	return nil
}

// ReadAll returns the raw accumulated log. A missing log reads as
// empty, not as an error.
func (r *Recorder) ReadAll() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := afero.ReadFile(r.appFs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte{}, nil
		}

		return nil, fmt.Errorf("reading performance log: %w", err)
	}

	return data, nil
}

// ReadLast parses and returns the most recent record. Returns ErrEmpty
// when the log is empty or missing.
func (r *Recorder) ReadLast() (*Record, error) {
	data, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmpty
	}

	lines := bytes.Split(trimmed, []byte{'\n'})
	last := lines[len(lines)-1]

	var record Record
	if err := json.Unmarshal(last, &record); err != nil {
		return nil, fmt.Errorf("parsing last record: %w", err)
	}

	return &record, nil
}

// Truncate purges the whole log.
func (r *Recorder) Truncate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := afero.WriteFile(r.appFs, r.path, []byte{}, 0o644); err != nil {
		return fmt.Errorf("truncating performance log: %w", err)
	}

	r.logger.Info(
		"performance log cleared",
		slog.String("path", r.path),
	)

	return nil
}
