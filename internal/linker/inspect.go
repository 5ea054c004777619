package linker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/reslink/internal/config"
	"github.com/agentx-labs/reslink/internal/platform"
)

// State describes what occupies the destination resource path.
type State string

const (
	StateMissing  State = "missing"  // nothing at the destination
	StateLinked   State = "linked"   // symlink to the source, source exists
	StateDangling State = "dangling" // symlink to the source, source missing
	StateStale    State = "stale"    // symlink to somewhere else
	StateOccupied State = "occupied" // a regular file or directory
)

// LinkStatus is the result of Inspect.
type LinkStatus struct {
	Source      string
	Destination string
	// Target is the stored symlink text, if the destination is a symlink.
	Target string
	State  State
}

// Inspect reports the state of the destination resource entry. It never
// modifies the filesystem.
func (l *Linker) Inspect(inv config.Invocation) (*LinkStatus, error) {
	src := inv.SourcePath()
	dst := inv.DestinationPath()
	status := &LinkStatus{Source: src, Destination: dst}

	info, err := os.Lstat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		status.State = StateMissing
		return status, nil
	}
	if err != nil {
		return nil, &LinkError{Op: "lstat", Path: dst, Err: unwrapPathErr(err)}
	}
	if info.Mode()&os.ModeSymlink == 0 {
		status.State = StateOccupied
		return status, nil
	}

	target, err := platform.ReadSymlinkTarget(dst)
	if err != nil {
		return nil, &LinkError{Op: "readlink", Path: dst, Err: unwrapPathErr(err)}
	}
	status.Target = target

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(dst), resolved)
	}
	same, err := samePath(resolved, src)
	if err != nil {
		return nil, &LinkError{Op: "relpath", Path: dst, Err: err}
	}
	if !same {
		status.State = StateStale
		return status, nil
	}

	_, err = os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		status.State = StateDangling
		return status, nil
	}
	if err != nil {
		return nil, &LinkError{Op: "stat", Path: dst, Err: unwrapPathErr(err)}
	}
	status.State = StateLinked
	return status, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
