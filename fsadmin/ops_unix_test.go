//go:build darwin || linux

package fsadmin

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crafted-tech/spawnadmin"
)

func testAdmin(t *testing.T) (*Admin, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return &Admin{TestMode: true, Logger: NewMemoryLogger()}, ctx
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSymlink(t *testing.T) {
	a, ctx := testAdmin(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	writeFile(t, target, "hello")

	if err := a.Symlink(ctx, target, link); err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink: %v", err)
	}
	if got != target {
		t.Errorf("link points to %s, want %s", got, target)
	}
}

func TestSymlinkExistingPathFails(t *testing.T) {
	a, ctx := testAdmin(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	writeFile(t, target, "hello")

	err := a.Symlink(ctx, target, target)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Symlink error = %v, want *ExitError", err)
	}
	if exitErr.Command != "ln" || exitErr.Code == 0 {
		t.Errorf("ExitError = %+v", exitErr)
	}
}

func TestUnlink(t *testing.T) {
	a, ctx := testAdmin(t)
	dir := filepath.Join(t.TempDir(), "tree")
	writeFile(t, filepath.Join(dir, "a", "b.txt"), "b")

	if err := a.Unlink(ctx, dir); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("%s still exists (stat err %v)", dir, err)
	}

	if err := a.Unlink(ctx, dir); err != nil {
		t.Errorf("Unlink of missing path: %v", err)
	}
}

func TestMakeTree(t *testing.T) {
	a, ctx := testAdmin(t)
	dir := filepath.Join(t.TempDir(), "x", "y", "z")

	if err := a.MakeTree(ctx, dir); err != nil {
		t.Fatalf("MakeTree: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("%s is not a directory (err %v)", dir, err)
	}

	if err := a.MakeTree(ctx, dir); err != nil {
		t.Errorf("MakeTree on existing directory: %v", err)
	}
}

func TestRecursiveCopyReplacesDestination(t *testing.T) {
	a, ctx := testAdmin(t)
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	writeFile(t, filepath.Join(src, "file.txt"), "new")
	writeFile(t, filepath.Join(src, "nested", "deep.txt"), "deep")
	writeFile(t, filepath.Join(dst, "file.txt"), "old")
	writeFile(t, filepath.Join(dst, "other-file.txt"), "stale")

	if err := a.RecursiveCopy(ctx, src, dst); err != nil {
		t.Fatalf("RecursiveCopy: %v", err)
	}

	for path, want := range map[string]string{
		filepath.Join(dst, "file.txt"):           "new",
		filepath.Join(dst, "nested", "deep.txt"): "deep",
	} {
		got, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("read %s: %v", path, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	if _, err := os.Stat(filepath.Join(dst, "other-file.txt")); !os.IsNotExist(err) {
		t.Error("stale file survived the copy")
	}
	if !strings.Contains(a.Logger.Content(), "Step 'Copy "+src+"' completed") {
		t.Errorf("log missing copy step:\n%s", a.Logger.Content())
	}
}

func TestRecursiveCopyMissingSource(t *testing.T) {
	a, ctx := testAdmin(t)
	root := t.TempDir()

	err := a.RecursiveCopy(ctx, filepath.Join(root, "missing"), filepath.Join(root, "dst"))
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Command != "cp" {
		t.Fatalf("RecursiveCopy error = %v, want cp *ExitError", err)
	}
}

func TestCreateWriteStream(t *testing.T) {
	a, ctx := testAdmin(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	writeFile(t, path, "previous contents that are longer")

	w, err := a.CreateWriteStream(ctx, path)
	if err != nil {
		t.Fatalf("CreateWriteStream: %v", err)
	}
	if _, err := io.WriteString(w, "line one\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := io.WriteString(w, "line two\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "line one\nline two\n" {
		t.Errorf("file = %q", got)
	}
}

func TestCreateWriteStreamFailure(t *testing.T) {
	a, ctx := testAdmin(t)
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	w, err := a.CreateWriteStream(ctx, path)
	if err != nil {
		t.Fatalf("CreateWriteStream: %v", err)
	}
	io.WriteString(w, "data")

	err = w.Close()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Close error = %v, want *ExitError", err)
	}
	if exitErr.Code == 0 {
		t.Error("ExitError has a zero code")
	}
}

func TestCommandStepReportsExit(t *testing.T) {
	a, ctx := testAdmin(t)
	step := a.CommandStep("Fail", "sh", spawnadmin.NewCommand("/bin/sh", "-c", "exit 4"))

	res := step.Action(ctx)
	var exitErr *ExitError
	if !errors.As(res.Err, &exitErr) || exitErr.Code != 4 {
		t.Fatalf("step error = %v, want exit status 4", res.Err)
	}
}
