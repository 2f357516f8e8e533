package textbuf

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlainUTF8(t *testing.T) {
	path := writeTemp(t, "plain.txt", []byte("hello\nworld\n"))
	buf, err := Load(7, path)
	if err != nil {
		t.Fatal(err)
	}
	if buf.ID() != 7 {
		t.Errorf("ID = %d", buf.ID())
	}
	if buf.Kind() != "txt" {
		t.Errorf("Kind = %q", buf.Kind())
	}
	if buf.LineCount() != 2 || buf.Line(2) != "world" {
		t.Errorf("lines = %d, Line(2) = %q", buf.LineCount(), buf.Line(2))
	}
}

func TestLoadUTF8BOM(t *testing.T) {
	path := writeTemp(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, "zażółć\n"...))
	buf, err := Load(1, path)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Line(1) != "zażółć" {
		t.Errorf("Line(1) = %q", buf.Line(1))
	}
}

func TestLoadUTF16LE(t *testing.T) {
	// "hi\nok" little-endian with BOM
	content := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0, 'o', 0, 'k', 0}
	path := writeTemp(t, "wide.txt", content)
	buf, err := Load(1, path)
	if err != nil {
		t.Fatal(err)
	}
	if buf.LineCount() != 2 || buf.Line(1) != "hi" || buf.Line(2) != "ok" {
		t.Errorf("lines = %v", buf.Slice(1, buf.LineCount()))
	}
}

func TestLoadRejectsBinary(t *testing.T) {
	path := writeTemp(t, "blob.bin", []byte{0x7F, 'E', 'L', 'F', 0x00, 0x01, 0x02})
	if _, err := Load(1, path); err == nil {
		t.Fatal("expected error for binary content")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.txt", nil)
	buf, err := Load(1, path)
	if err != nil {
		t.Fatal(err)
	}
	if buf.LineCount() != 0 {
		t.Errorf("LineCount = %d, want 0", buf.LineCount())
	}
}
