package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "remote" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("one "), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one two" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestMakeInputSourceRejectsEmpty(t *testing.T) {
	if _, err := makeInputSource("   "); err == nil {
		t.Fatal("expected error for blank input argument")
	}
}

func TestResolveOutputCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")
	writer, closer, err := resolveOutput(path)
	if err != nil {
		t.Fatalf("resolveOutput: %v", err)
	}
	if closer == nil {
		t.Fatal("expected a closer for a file output")
	}
	if _, err := io.WriteString(writer, "payload"); err != nil {
		t.Fatalf("write output: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close output: %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(buf) != "payload" {
		t.Fatalf("unexpected output content: %q", string(buf))
	}
}

func TestStrconvAtoi(t *testing.T) {
	if n, err := strconvAtoi("120"); err != nil || n != 120 {
		t.Fatalf("strconvAtoi(120) = %d, %v", n, err)
	}
	if _, err := strconvAtoi("12x"); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
	if _, err := strconvAtoi(""); err == nil {
		t.Fatal("expected error for empty value")
	}
}

func TestResolveWidthPrefersFlag(t *testing.T) {
	if got := resolveWidth(72); got != 72 {
		t.Fatalf("resolveWidth(72) = %d", got)
	}
}

func TestTerminalWidthFallsBackToColumns(t *testing.T) {
	t.Setenv("COLUMNS", "97")
	if got := terminalWidth(80); got != 97 {
		t.Fatalf("terminalWidth = %d, want 97 from COLUMNS", got)
	}
}
