package writers

import (
	"fmt"
	"os"
	"path/filepath"
)

// Report is an output file written under a temporary name in its final
// directory and moved into place by Commit.
type Report struct {
	f      *os.File
	path   string
	closed bool
}

// CreateReport creates the parent directories of path and opens the staging file.
func CreateReport(path string) (*Report, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return nil, fmt.Errorf("create report %s: %w", path, err)
	}
	return &Report{f: f, path: path}, nil
}

// Write implements io.Writer on the staging file.
func (r *Report) Write(p []byte) (int, error) { return r.f.Write(p) }

// Path is the final location of the report.
func (r *Report) Path() string { return r.path }

// Commit closes the staging file and renames it to Path.
func (r *Report) Commit() error {
	if r.closed {
		return fmt.Errorf("report %s already closed", r.path)
	}
	r.closed = true
	tmp := r.f.Name()
	if err := r.f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close report %s: %w", r.path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize report %s: %w", r.path, err)
	}
	return nil
}

// Abort discards the staging file. It is a no-op after Commit.
func (r *Report) Abort() {
	if r.closed {
		return
	}
	r.closed = true
	_ = r.f.Close()
	_ = os.Remove(r.f.Name())
}
