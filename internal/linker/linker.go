package linker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/reslink/internal/config"
	"github.com/agentx-labs/reslink/internal/platform"
)

// Reporter receives human-readable diagnostics.
type Reporter interface {
	Report(msg string, args ...any)
}

// Symlinker creates a symlink flagged as pointing at a directory.
type Symlinker interface {
	CreateDirSymlink(target, link string) error
}

// LinkError records a failed filesystem step and the path involved.
type LinkError struct {
	Op   string // "lstat", "stat", "relpath", "symlink", "readlink"
	Path string
	Err  error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

// Result is the outcome of EnsureResourceLink.
type Result struct {
	Source      string
	Destination string
	// Target is the stored link text. Empty when nothing was created.
	Target  string
	Created bool
}

// Linker creates and inspects resource links.
type Linker struct {
	reporter  Reporter
	symlinker Symlinker
}

// New returns a Linker. A nil reporter discards diagnostics and a nil
// symlinker uses the platform implementation.
func New(reporter Reporter, symlinker Symlinker) *Linker {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if symlinker == nil {
		symlinker = platform.DirSymlinker{}
	}
	return &Linker{reporter: reporter, symlinker: symlinker}
}

// EnsureResourceLink creates the destination resource entry as a relative
// directory symlink to the source resource directory. If any entry already
// exists at the destination, including a broken symlink, it returns a
// Result with Created false and does nothing else. The source is not
// required to exist.
//
// The existence check and the creation are not atomic; a concurrent creator
// makes the symlink step fail with a *LinkError.
func (l *Linker) EnsureResourceLink(inv config.Invocation) (*Result, error) {
	src := inv.SourcePath()
	dst := inv.DestinationPath()
	res := &Result{Source: src, Destination: dst}

	exists, err := entryExists(dst)
	if err != nil {
		return nil, err
	}
	if exists {
		return res, nil
	}

	l.reporter.Report("root resource dir", "path", src)
	l.reporter.Report("build resource dir", "path", dst)

	rel, err := relativeTarget(src, dst)
	if err != nil {
		return nil, err
	}
	l.reporter.Report("relative link target", "target", rel)

	if err := l.symlinker.CreateDirSymlink(rel, dst); err != nil {
		return nil, &LinkError{Op: "symlink", Path: dst, Err: unwrapLinkErr(err)}
	}

	res.Target = rel
	res.Created = true
	return res, nil
}

// entryExists reports whether anything is at path without following a
// final symlink.
func entryExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &LinkError{Op: "lstat", Path: path, Err: unwrapPathErr(err)}
	}
}

// relativeTarget returns src expressed relative to the directory holding dst.
// Both are made absolute first so mixed absolute and relative inputs work.
func relativeTarget(src, dst string) (string, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return "", &LinkError{Op: "relpath", Path: src, Err: err}
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return "", &LinkError{Op: "relpath", Path: dst, Err: err}
	}
	rel, err := filepath.Rel(filepath.Dir(absDst), absSrc)
	if err != nil {
		return "", &LinkError{Op: "relpath", Path: dst, Err: err}
	}
	return rel, nil
}

// unwrapLinkErr strips *os.LinkError so the message names the path once.
func unwrapLinkErr(err error) error {
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}

func unwrapPathErr(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

type nopReporter struct{}

func (nopReporter) Report(string, ...any) {}
