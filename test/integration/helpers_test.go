//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/reslink/internal/platform"
)

// testProject is a synthetic source tree with a resource directory and an
// out-of-tree style build directory nested under it.
type testProject struct {
	RootDir  string
	BuildDir string
}

// setupProject creates <tmp>/proj/res with a few assets and an empty
// <tmp>/proj/out/build. RESLINK_* variables are cleared for isolation.
func setupProject(t *testing.T) *testProject {
	t.Helper()
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks not supported on this system")
	}

	for _, key := range []string{"RESLINK_RESOURCE_DIR", "RESLINK_LOG_LEVEL", "RESLINK_LOG_FILE", "RESLINK_QUIET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	root := filepath.Join(t.TempDir(), "proj")
	p := &testProject{
		RootDir:  root,
		BuildDir: filepath.Join(root, "out", "build"),
	}

	writeFile(t, filepath.Join(root, "res", "shaders", "basic.shader"), "#shader vertex\n#shader fragment\n")
	writeFile(t, filepath.Join(root, "res", "textures", "logo.png"), "\x89PNG")
	if err := os.MkdirAll(p.BuildDir, 0755); err != nil {
		t.Fatalf("creating build dir: %v", err)
	}
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}

func assertSymlink(t *testing.T, path, wantTarget string) {
	t.Helper()
	got, err := os.Readlink(path)
	if err != nil {
		t.Fatalf("%s is not a symlink: %v", path, err)
	}
	if got != wantTarget {
		t.Errorf("%s -> %q, want %q", path, got, wantTarget)
	}
}
