package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func skipWithoutSymlinks(t *testing.T) {
	t.Helper()
	if !IsSymlinkSupported() {
		t.Skip("symlinks not supported on this system")
	}
}

func TestCreateDirSymlinkRelative(t *testing.T) {
	skipWithoutSymlinks(t)
	tmp := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmp, "res"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "res", "shader.glsl"), []byte("void main(){}"), 0644); err != nil {
		t.Fatal(err)
	}
	buildDir := filepath.Join(tmp, "out", "build")
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(buildDir, "res")
	target := filepath.Join("..", "..", "res")
	if err := (DirSymlinker{}).CreateDirSymlink(target, link); err != nil {
		t.Fatalf("CreateDirSymlink failed: %v", err)
	}

	got, err := ReadSymlinkTarget(link)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget failed: %v", err)
	}
	if got != target {
		t.Errorf("symlink target = %q, want %q", got, target)
	}

	data, err := os.ReadFile(filepath.Join(link, "shader.glsl"))
	if err != nil {
		t.Fatalf("reading through link: %v", err)
	}
	if string(data) != "void main(){}" {
		t.Errorf("content through link = %q", string(data))
	}
}

func TestCreateDirSymlinkDanglingTarget(t *testing.T) {
	skipWithoutSymlinks(t)
	tmp := t.TempDir()

	link := filepath.Join(tmp, "res")
	if err := (DirSymlinker{}).CreateDirSymlink("missing", link); err != nil {
		t.Fatalf("CreateDirSymlink with missing target failed: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("mode = %v, want symlink", info.Mode())
	}
}

func TestCreateDirSymlinkExisting(t *testing.T) {
	skipWithoutSymlinks(t)
	tmp := t.TempDir()

	link := filepath.Join(tmp, "res")
	if err := os.Mkdir(link, 0755); err != nil {
		t.Fatal(err)
	}

	err := (DirSymlinker{}).CreateDirSymlink("elsewhere", link)
	if err == nil {
		t.Fatal("expected error when link path already exists")
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		t.Errorf("error type = %T, want *os.LinkError", err)
	}
}

func TestReadSymlinkTargetNotALink(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "plain.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadSymlinkTarget(path); err == nil {
		t.Error("expected error reading target of a regular file")
	}
}

func TestIsSymlinkSupported(t *testing.T) {
	result := IsSymlinkSupported()
	if runtime.GOOS != "windows" && !result {
		t.Error("IsSymlinkSupported returned false on Unix")
	}
}
