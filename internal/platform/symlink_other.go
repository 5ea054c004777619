//go:build !windows

package platform

import "os"

func createDirSymlink(target, link string) error {
	return os.Symlink(target, link)
}
