package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/augurhq/augur/pkg/models"
)

func analyze(t *testing.T, source string) models.AnalysisResult {
	t.Helper()
	a := New()
	defer a.Close()
	return a.Analyze([]byte(source))
}

func TestAnalyzeEmptySource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty string", ""},
		{"spaces", "   "},
		{"whitespace mix", " \t\n\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyze(t, tt.source)

			if result != models.EmptyResult() {
				t.Errorf("expected empty sentinel, got %+v", result)
			}
			if result.MaintainabilityIndex != 100.0 {
				t.Errorf("expected MI 100.0, got %v", result.MaintainabilityIndex)
			}
			if result.Description != nil {
				t.Errorf("expected nil description, got %q", *result.Description)
			}
		})
	}
}

func TestAnalyzeSimpleConditional(t *testing.T) {
	result := analyze(t, "if x:\n    pass\n")

	if result.ComplexityScore != 1 {
		t.Errorf("expected cyclomatic 1, got %d", result.ComplexityScore)
	}
	if result.CognitiveComplexity != 1 {
		t.Errorf("expected cognitive 1, got %d", result.CognitiveComplexity)
	}
	if result.NodeCount == 0 {
		t.Error("expected non-zero node count")
	}
	if result.LinesOfCode != 2 {
		t.Errorf("expected 2 lines of code, got %d", result.LinesOfCode)
	}
}

func TestControlFlowScoring(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		cyclomatic int
		cognitive  int
	}{
		{
			name:       "if else",
			source:     "if x:\n    pass\nelse:\n    pass\n",
			cyclomatic: 2,
			cognitive:  2,
		},
		{
			name:       "elif chain",
			source:     "if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n",
			cyclomatic: 3,
			cognitive:  3,
		},
		{
			name:       "try except",
			source:     "try:\n    pass\nexcept ValueError:\n    pass\n",
			cyclomatic: 2,
			cognitive:  2,
		},
		{
			name:       "loop nested in conditional",
			source:     "if x:\n    for i in x:\n        pass\n",
			cyclomatic: 2,
			cognitive:  3,
		},
		{
			name: "function body does not add nesting",
			source: "def f(a):\n" +
				"    if a:\n" +
				"        for i in a:\n" +
				"            pass\n" +
				"    else:\n" +
				"        pass\n",
			cyclomatic: 3,
			cognitive:  4,
		},
		{
			name:       "no control flow",
			source:     "x = 1\ny = x + 2\n",
			cyclomatic: 0,
			cognitive:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyze(t, tt.source)

			if result.ComplexityScore != tt.cyclomatic {
				t.Errorf("cyclomatic: expected %d, got %d", tt.cyclomatic, result.ComplexityScore)
			}
			if result.CognitiveComplexity != tt.cognitive {
				t.Errorf("cognitive: expected %d, got %d", tt.cognitive, result.CognitiveComplexity)
			}
		})
	}
}

func TestSqaleDebtTracksCognitive(t *testing.T) {
	sources := []string{
		"x = 1\n",
		"if x:\n    pass\n",
		"if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n",
		"def f(a):\n    if a:\n        for i in a:\n            pass\n",
	}

	for _, src := range sources {
		result := analyze(t, src)
		expected := round2(float64(result.CognitiveComplexity) * 0.15)
		if result.SqaleDebtHours != expected {
			t.Errorf("source %q: expected debt %v, got %v", src, expected, result.SqaleDebtHours)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	source := "def f(a, b):\n" +
		"    if a > b:\n" +
		"        return a\n" +
		"    for i in range(b):\n" +
		"        a += i\n" +
		"    return a\n"

	first := analyze(t, source)
	for i := 0; i < 5; i++ {
		if got := analyze(t, source); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestMaintainabilityIndexBounds(t *testing.T) {
	sources := []string{
		"x = 1\n",
		"# hello\n",
		"def f():\n    pass\n",
		"if a:\n    x = a * 2\nelif b:\n    x = b - 1\nelse:\n    x = 0\n",
	}

	for _, src := range sources {
		result := analyze(t, src)
		if result.MaintainabilityIndex < 0 || result.MaintainabilityIndex > 100 {
			t.Errorf("source %q: MI %v out of [0, 100]", src, result.MaintainabilityIndex)
		}
	}
}

func TestCommentOnlySource(t *testing.T) {
	result := analyze(t, "# hello\n")

	if result.NodeCount == 0 {
		t.Error("comment-only source should still produce a parse tree")
	}
	if result.HalsteadVolume != 0 {
		t.Errorf("expected volume 0, got %v", result.HalsteadVolume)
	}
	if result.CognitiveComplexity != 0 {
		t.Errorf("expected cognitive 0, got %d", result.CognitiveComplexity)
	}
	if result.LinesOfCode != 1 {
		t.Errorf("expected lines of code floor of 1, got %d", result.LinesOfCode)
	}
	if result.MaintainabilityIndex != 99.87 {
		t.Errorf("expected MI 99.87, got %v", result.MaintainabilityIndex)
	}
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.py")
	source := "\"\"\"Module under test.\"\"\"\n\nif x:\n    pass\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	a := New()
	defer a.Close()

	fa, err := a.AnalyzeFile(path)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}

	if fa.Path != path {
		t.Errorf("expected path %q, got %q", path, fa.Path)
	}
	if fa.Description == nil || *fa.Description != "Module under test." {
		t.Errorf("expected docstring, got %v", fa.Description)
	}
	if fa.ComplexityScore != 1 {
		t.Errorf("expected cyclomatic 1, got %d", fa.ComplexityScore)
	}
}

func TestAnalyzeFileMissing(t *testing.T) {
	a := New()
	defer a.Close()

	if _, err := a.AnalyzeFile(filepath.Join(t.TempDir(), "missing.py")); err == nil {
		t.Error("expected error for missing file")
	}
}
