//go:build windows

package platform

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func createDirSymlink(target, link string) error {
	// Windows symlink targets must use backslashes to resolve.
	t, err := windows.UTF16PtrFromString(filepath.FromSlash(target))
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: err}
	}
	l, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: err}
	}

	flags := uint32(windows.SYMBOLIC_LINK_FLAG_DIRECTORY | windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE)
	err = windows.CreateSymbolicLink(l, t, flags)
	if errors.Is(err, windows.ERROR_INVALID_PARAMETER) {
		// Builds older than Windows 10 1703 reject the unprivileged flag.
		err = windows.CreateSymbolicLink(l, t, windows.SYMBOLIC_LINK_FLAG_DIRECTORY)
	}
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: err}
	}
	return nil
}
