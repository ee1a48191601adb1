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

package dockerstats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// NewLog creates a Log backed by the CSV file at path.
func NewLog(
	appFs afero.Fs,
	logger *slog.Logger,
	path string,
) *Log {
	return &Log{
		appFs:  appFs,
		logger: logger,
		path:   path,
	}
}

// Append writes one CSV row per sample, preceding the first sample of
// a new or empty log with the header row.
func (l *Log) Append(
	rows []Row,
) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := l.appFs.Stat(l.path)
	writeHeader := err != nil || info.Size() == 0

	f, err := l.appFs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening stats log: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for _, row := range rows {
		if err := w.Write(row.fields()); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing stats log: %w", err)
	}

	return nil
}

// ReadAll returns the raw accumulated log. A missing log reads as
// empty, not as an error.
func (l *Log) ReadAll() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := afero.ReadFile(l.appFs, l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte{}, nil
		}

		return nil, fmt.Errorf("reading stats log: %w", err)
	}

	return data, nil
}

// fields returns the row in csv column order.
func (r Row) fields() []string {
	return []string{
		r.Timestamp,
		r.ContainerID,
		r.Name,
		r.CPUPct,
		r.MemUsageBytes,
		r.MemLimitBytes,
		r.MemPct,
	}
}
