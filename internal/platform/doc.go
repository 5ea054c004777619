// Package platform provides the filesystem calls whose behavior differs
// between operating systems. On Unix a directory symlink is an ordinary
// os.Symlink. On Windows the link is created with the directory flag set, so
// it stays a directory link even when its target does not exist yet.
package platform
