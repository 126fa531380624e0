// Package models defines the result records produced by analysis.
package models

// AnalysisResult holds the structural metrics derived from one source
// file. It is a value record: produced fresh per analysis call and
// never mutated afterwards.
type AnalysisResult struct {
	NodeCount            int     `json:"node_count" toon:"node_count"`
	ComplexityScore      int     `json:"complexity_score" toon:"complexity_score"`
	CognitiveComplexity  int     `json:"cognitive_complexity" toon:"cognitive_complexity"`
	HalsteadVolume       float64 `json:"halstead_volume" toon:"halstead_volume"`
	MaintainabilityIndex float64 `json:"maintainability_index" toon:"maintainability_index"`
	SqaleDebtHours       float64 `json:"sqale_debt_hours" toon:"sqale_debt_hours"`
	LinesOfCode          int     `json:"lines_of_code" toon:"lines_of_code"`
	Description          *string `json:"description,omitempty" toon:"description,omitempty"`
}

// EmptyResult returns the fixed sentinel for empty or whitespace-only
// input: all counts zero, a perfect maintainability index, no
// description.
func EmptyResult() AnalysisResult {
	return AnalysisResult{MaintainabilityIndex: 100.0}
}

// Maintainability rating bands, higher index is better.
const (
	RatingHigh     = "highly maintainable"
	RatingModerate = "moderately maintainable"
	RatingLow      = "difficult to maintain"
)

// MaintainabilityRating returns the band label for the index.
func (r AnalysisResult) MaintainabilityRating() string {
	switch {
	case r.MaintainabilityIndex >= 85:
		return RatingHigh
	case r.MaintainabilityIndex >= 65:
		return RatingModerate
	default:
		return RatingLow
	}
}

// FileAnalysis associates a result with the file it was computed from.
// Path ownership belongs to the caller; the engine is indifferent to
// naming.
type FileAnalysis struct {
	Path string `json:"path" toon:"path"`
	AnalysisResult
}

// ProjectAnalysis is the aggregate of a batch scan.
type ProjectAnalysis struct {
	Files   []FileAnalysis `json:"files" toon:"files"`
	Summary Summary        `json:"summary" toon:"summary"`
}

// Summary provides project-level statistics.
type Summary struct {
	TotalFiles         int     `json:"total_files" toon:"total_files"`
	TotalLines         int     `json:"total_lines" toon:"total_lines"`
	TotalDebtHours     float64 `json:"total_debt_hours" toon:"total_debt_hours"`
	AvgMaintainability float64 `json:"avg_maintainability" toon:"avg_maintainability"`
	MinMaintainability float64 `json:"min_maintainability" toon:"min_maintainability"`
	WorstFile          string  `json:"worst_file,omitempty" toon:"worst_file,omitempty"`
	MaxCognitive       int     `json:"max_cognitive" toon:"max_cognitive"`
	P50Cognitive       float64 `json:"p50_cognitive" toon:"p50_cognitive"`
	P90Cognitive       float64 `json:"p90_cognitive" toon:"p90_cognitive"`
	P95Cognitive       float64 `json:"p95_cognitive" toon:"p95_cognitive"`
}
