package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// DirSymlinker creates symlinks flagged as pointing at a directory.
type DirSymlinker struct{}

// CreateDirSymlink creates a symbolic link at link whose stored target is
// target, exactly as given. Relative targets are resolved by the OS against
// the directory containing link. The directory flag is only meaningful on
// Windows and is ignored elsewhere. Errors are *os.LinkError.
func (DirSymlinker) CreateDirSymlink(target, link string) error {
	return createDirSymlink(target, link)
}

// ReadSymlinkTarget returns the stored target of a symlink without resolving it.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// IsSymlinkSupported reports whether directory symlinks can be created here.
// On Windows this needs developer mode or elevation, so a throwaway link is
// created in a temp directory to find out.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir, err := os.MkdirTemp("", "reslink-probe-")
	if err != nil {
		return false
	}
	defer os.RemoveAll(tmpDir)

	if err := createDirSymlink(".", filepath.Join(tmpDir, "probe")); err != nil {
		return false
	}
	return true
}
