package fsadmin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	path, err := writeTempFile("spawnadmin-test", ".cmd", copyScriptForTest)
	if err != nil {
		t.Fatalf("writeTempFile: %v", err)
	}
	defer os.Remove(path)

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "spawnadmin-test-") || !strings.HasSuffix(name, ".cmd") {
		t.Errorf("temp file name = %s", name)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(copyScriptForTest) {
		t.Errorf("content = %q", got)
	}
}

var copyScriptForTest = []byte("@echo off\r\nexit /b 0\r\n")
