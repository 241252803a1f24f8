// Package report owns the report file: resolving its location, creating it,
// and appending numbered sections in call order.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dstergiou/pci-host-report/internal/errors"
)

// Report is the append-only evidence file for one run. Single writer,
// opened once for the process lifetime.
type Report struct {
	Path string
	f    *os.File
}

// Create makes the destination directory (idempotent) and opens the report
// file for appending. Any failure here is fatal to the run and wraps
// ErrPermissionDenied so callers can identify the setup-error class.
func Create(dir, name string) (*Report, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(errors.ErrPermissionDenied, "create report directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, errors.Wrap(errors.ErrPermissionDenied, "open report file %s: %v", path, err)
	}

	return &Report{Path: path, f: f}, nil
}

// Preamble writes the run-identification header once, before section 1.
func (r *Report) Preamble(runID string, now time.Time, hostname, site string) error {
	_, err := fmt.Fprintf(r.f, "PCI DSS evidence report\nRun ID: %s\nDate: %s\nHost: %s\nSite: %s\n\n",
		runID, now.Format("2006-01-02 15:04:05"), hostname, site)
	if err != nil {
		return errors.Wrap(err, "write report preamble")
	}
	return nil
}

// Append writes one numbered section: heading line, body, blank separator.
// Writes are synchronous; the section is durably appended before Append
// returns.
func (r *Report) Append(index int, title, body string) error {
	if _, err := fmt.Fprintf(r.f, "%d) %s\n%s\n\n", index, title, body); err != nil {
		return errors.Wrap(err, "append section %d", index)
	}
	return nil
}

// Close releases the report file handle.
func (r *Report) Close() error {
	return r.f.Close()
}
