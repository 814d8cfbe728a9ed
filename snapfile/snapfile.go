// Package snapfile writes files atomically: data goes to a buffered temp file
// created next to the target, which is synced and renamed over the target on
// Commit or removed on Close. Readers therefore only ever see a complete
// previous version or a complete new version of a snapshot.
package snapfile

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultBufferSize is the write buffer used when a non-positive size is given
const DefaultBufferSize = 1 << 16 // 64k

// DefaultPerm is the mode given to files that do not exist yet
const DefaultPerm os.FileMode = 0o644

// Writer buffers writes for a single target file
type Writer struct {
	pending   *renameio.PendingFile
	bufWriter *bufio.Writer
	done      bool
}

// Create starts a new atomic write of target, creating its directory if needed.
// An existing target keeps its permissions, a new one gets DefaultPerm.
func Create(target string, bufferSize int) (*Writer, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	dir := filepath.Dir(target)
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}
	pending, err := renameio.NewPendingFile(target,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(DefaultPerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return nil, err
	}
	return &Writer{
		pending:   pending,
		bufWriter: bufio.NewWriterSize(pending, bufferSize),
	}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.done {
		return 0, os.ErrClosed
	}
	return w.bufWriter.Write(p)
}

// Commit flushes and syncs the temp file and renames it over the target.
// On failure the temp file is removed and the target is left as it was.
func (w *Writer) Commit() error {
	if w.done {
		return os.ErrClosed
	}
	w.done = true
	defer w.pending.Cleanup()
	if err := w.bufWriter.Flush(); err != nil {
		return err
	}
	return w.pending.CloseAtomicallyReplace()
}

// Close aborts the write and removes the temp file.
// Calling Close after Commit is a no-op.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	w.bufWriter = nil
	return w.pending.Cleanup()
}
