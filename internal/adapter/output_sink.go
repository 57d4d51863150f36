package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/modegen/internal/model"
)

// OutputSink receives generated scripts.
type OutputSink interface {
	Write(path m.Path, content []byte) error
}

// LocalOutputSink writes files atomically: content goes to a temporary file
// in the target directory which is then renamed over the target.
type LocalOutputSink struct{}

// NewLocalOutputSink constructs a LocalOutputSink.
func NewLocalOutputSink() *LocalOutputSink {
	return &LocalOutputSink{}
}

// Write implements OutputSink. Missing parent directories are created.
func (s *LocalOutputSink) Write(path m.Path, content []byte) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}

	name := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(name)

		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("closing %s: %w", name, err)
	}

	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("chmod %s: %w", name, err)
	}

	if err := os.Rename(name, string(path)); err != nil {
		os.Remove(name)
		return fmt.Errorf("renaming %s: %w", path, err)
	}

	return nil
}

// WriterSink writes every script to one writer, ignoring the path.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink constructs a WriterSink around w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write implements OutputSink.
func (s *WriterSink) Write(_ m.Path, content []byte) error {
	if _, err := s.w.Write(content); err != nil {
		return err
	}

	_, err := io.WriteString(s.w, "\n")

	return err
}
