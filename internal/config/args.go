package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultResourceDir is the conventional name of the resource directory.
const DefaultResourceDir = "res"

// ErrMissingArgument is matched by errors.Is for any missing positional argument.
var ErrMissingArgument = errors.New("missing argument")

// ArgumentError reports which positional argument was absent or empty.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s (usage: <root_dir> <build_dir>)", ErrMissingArgument, e.Name)
}

func (e *ArgumentError) Unwrap() error { return ErrMissingArgument }

// Invocation is the validated input of a single run. It is built once at
// entry and never mutated by the linker.
type Invocation struct {
	RootDir     string
	BuildDir    string
	ResourceDir string
}

// FromArgs builds an Invocation from the two positional arguments. It does
// not touch the filesystem. ResourceDir is left at the default.
func FromArgs(args []string) (Invocation, error) {
	names := []string{"root_dir", "build_dir"}
	if len(args) > len(names) {
		return Invocation{}, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	for i, name := range names {
		if i >= len(args) || strings.TrimSpace(args[i]) == "" {
			return Invocation{}, &ArgumentError{Name: name}
		}
	}
	return Invocation{
		RootDir:     args[0],
		BuildDir:    args[1],
		ResourceDir: DefaultResourceDir,
	}, nil
}

// SourcePath returns the resource directory under the root directory.
func (inv Invocation) SourcePath() string {
	return filepath.Join(inv.RootDir, inv.resourceDir())
}

// DestinationPath returns the resource entry under the build directory.
func (inv Invocation) DestinationPath() string {
	return filepath.Join(inv.BuildDir, inv.resourceDir())
}

func (inv Invocation) resourceDir() string {
	if inv.ResourceDir == "" {
		return DefaultResourceDir
	}
	return inv.ResourceDir
}

// ValidateResourceDir checks that name is a single path element.
func ValidateResourceDir(name string) error {
	switch {
	case name == "":
		return errors.New("resource dir name is empty")
	case name == "." || name == "..":
		return fmt.Errorf("resource dir name %q is not a directory name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("resource dir name %q must not contain a path separator", name)
	}
	return nil
}
