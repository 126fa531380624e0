package analyzer

import (
	"context"
	"os"
	"sort"

	"github.com/augurhq/augur/internal/fileproc"
	"github.com/augurhq/augur/pkg/models"
	"github.com/augurhq/augur/pkg/parser"
	"gonum.org/v1/gonum/stat"
)

// ProjectOptions configures a batch analysis run.
type ProjectOptions struct {
	// Workers caps the pool size; <= 0 uses the fileproc default.
	Workers int
	// OnProgress is called after each file, successful or not.
	OnProgress func()
	// OnError is called for files that could not be read.
	OnError func(path string, err error)
	// Lookup returns a previously computed result for a file's current
	// content, if one is available.
	Lookup func(path string, content []byte) (models.AnalysisResult, bool)
	// Store records a freshly computed result for later lookups.
	Store func(path string, content []byte, result models.AnalysisResult)
}

// AnalyzeProject analyzes files in parallel, one parser instance per
// task, and aggregates the per-file results. Files that cannot be read
// are reported through OnError and skipped.
func AnalyzeProject(ctx context.Context, files []string, opts ProjectOptions) models.ProjectAnalysis {
	results := fileproc.MapFilesN(ctx, files, opts.Workers, func(psr *parser.Parser, path string) (models.FileAnalysis, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return models.FileAnalysis{}, err
		}

		if opts.Lookup != nil {
			if res, ok := opts.Lookup(path, content); ok {
				return models.FileAnalysis{Path: path, AnalysisResult: res}, nil
			}
		}

		res := AnalyzeSource(psr, content)
		if opts.Store != nil {
			opts.Store(path, content, res)
		}
		return models.FileAnalysis{Path: path, AnalysisResult: res}, nil
	}, opts.OnProgress, opts.OnError)

	// Pool completion order is arbitrary; keep output deterministic.
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return models.ProjectAnalysis{
		Files:   results,
		Summary: buildSummary(results),
	}
}

func buildSummary(files []models.FileAnalysis) models.Summary {
	s := models.Summary{TotalFiles: len(files)}
	if len(files) == 0 {
		return s
	}

	cognitive := make([]float64, 0, len(files))
	maintainability := make([]float64, 0, len(files))

	s.MinMaintainability = files[0].MaintainabilityIndex
	s.WorstFile = files[0].Path

	for _, f := range files {
		s.TotalLines += f.LinesOfCode
		s.TotalDebtHours += f.SqaleDebtHours
		if f.CognitiveComplexity > s.MaxCognitive {
			s.MaxCognitive = f.CognitiveComplexity
		}
		if f.MaintainabilityIndex < s.MinMaintainability {
			s.MinMaintainability = f.MaintainabilityIndex
			s.WorstFile = f.Path
		}
		cognitive = append(cognitive, float64(f.CognitiveComplexity))
		maintainability = append(maintainability, f.MaintainabilityIndex)
	}

	s.TotalDebtHours = round2(s.TotalDebtHours)
	s.AvgMaintainability = round2(stat.Mean(maintainability, nil))

	sort.Float64s(cognitive)
	s.P50Cognitive = stat.Quantile(0.50, stat.Empirical, cognitive, nil)
	s.P90Cognitive = stat.Quantile(0.90, stat.Empirical, cognitive, nil)
	s.P95Cognitive = stat.Quantile(0.95, stat.Empirical, cognitive, nil)

	return s
}
