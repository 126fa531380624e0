package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/augurhq/augur/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirFindsPythonFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(dir, "pkg", "util.py"), "y = 2\n")
	writeFile(t, filepath.Join(dir, "typed.pyi"), "x: int\n")
	writeFile(t, filepath.Join(dir, "readme.md"), "# docs\n")
	writeFile(t, filepath.Join(dir, "script.sh"), "echo hi\n")

	s := New(config.DefaultConfig())
	files, err := s.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		ext := filepath.Ext(f)
		if ext != ".py" && ext != ".pyi" {
			t.Errorf("unexpected file %s", f)
		}
	}
}

func TestScanDirSkipsIgnoredDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.py"), "x = 1\n")
	writeFile(t, filepath.Join(dir, "__pycache__", "app.py"), "x = 1\n")
	writeFile(t, filepath.Join(dir, ".venv", "lib", "site.py"), "x = 1\n")
	writeFile(t, filepath.Join(dir, "node_modules", "mod.py"), "x = 1\n")

	s := New(config.DefaultConfig())
	files, err := s.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "app.py" {
		t.Errorf("expected app.py, got %s", files[0])
	}
}

func TestScanDirCustomPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.py"), "x = 1\n")
	writeFile(t, filepath.Join(dir, "app_test.py"), "x = 1\n")

	cfg := config.DefaultConfig()
	cfg.Scan.Patterns = []string{"*_test.py"}

	s := New(cfg)
	files, err := s.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "app.py" {
		t.Errorf("expected app.py, got %s", files[0])
	}
}

func TestScanDirMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.py"), "x = 1\n")

	big := make([]byte, 200)
	for i := range big {
		big[i] = 'x'
	}
	writeFile(t, filepath.Join(dir, "big.py"), string(big))

	cfg := config.DefaultConfig()
	cfg.Scan.MaxFileSize = 100

	s := New(cfg)
	files, err := s.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "small.py" {
		t.Errorf("expected small.py, got %s", files[0])
	}
	if s.SkippedLarge() != 1 {
		t.Errorf("expected 1 skipped file, got %d", s.SkippedLarge())
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	pyPath := filepath.Join(dir, "app.py")
	mdPath := filepath.Join(dir, "notes.md")
	writeFile(t, pyPath, "x = 1\n")
	writeFile(t, mdPath, "# notes\n")

	s := New(config.DefaultConfig())

	ok, err := s.ScanFile(pyPath)
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}
	if !ok {
		t.Error("expected Python file to be accepted")
	}

	ok, err = s.ScanFile(mdPath)
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}
	if ok {
		t.Error("expected non-Python file to be rejected")
	}

	if _, err := s.ScanFile(filepath.Join(dir, "missing.py")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilterBySize(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.py")
	writeFile(t, small, "x\n")

	files, skipped := FilterBySize([]string{small, filepath.Join(dir, "gone.py")}, 100)
	if len(files) != 1 || skipped != 1 {
		t.Errorf("expected 1 kept and 1 skipped, got %d kept %d skipped", len(files), skipped)
	}

	files, skipped = FilterBySize([]string{small}, 0)
	if len(files) != 1 || skipped != 0 {
		t.Errorf("zero limit should keep everything, got %d kept %d skipped", len(files), skipped)
	}
}
