package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/augurhq/augur/internal/cache"
	"github.com/augurhq/augur/internal/output"
	"github.com/augurhq/augur/internal/progress"
	"github.com/augurhq/augur/internal/scanner"
	"github.com/augurhq/augur/pkg/analyzer"
	"github.com/augurhq/augur/pkg/models"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "Analyze all Python files under the given paths",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "mi-threshold",
				Value: 65.0,
				Usage: "Maintainability index warning threshold",
			},
			&cli.IntFlag{
				Name:  "cognitive-threshold",
				Value: 15,
				Usage: "Cognitive complexity warning threshold",
			},
			&cli.Float64Flag{
				Name:  "debt-threshold",
				Value: 2.0,
				Usage: "SQALE debt hours warning threshold",
			},
			&cli.BoolFlag{
				Name:  "summary-only",
				Usage: "Show only the project summary",
			},
		},
		Action: runScanCmd,
	}
}

// thresholdFlags reports which warning thresholds a file exceeds.
func thresholdFlags(fa models.FileAnalysis, miThreshold float64, cogThreshold int, debtThreshold float64) (lowMI, highCog, highDebt bool) {
	lowMI = fa.MaintainabilityIndex < miThreshold
	highCog = fa.CognitiveComplexity > cogThreshold
	highDebt = fa.SqaleDebtHours > debtThreshold
	return lowMI, highCog, highDebt
}

// summaryContent renders the project summary lines for the text and
// markdown report section.
func summaryContent(s models.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Files: %d, lines: %d, total debt: %.2fh\n", s.TotalFiles, s.TotalLines, s.TotalDebtHours)
	fmt.Fprintf(&b, "Average MI: %.2f\n", s.AvgMaintainability)
	fmt.Fprintf(&b, "Cognitive percentiles: p50=%.1f p90=%.1f p95=%.1f (max %d)\n",
		s.P50Cognitive, s.P90Cognitive, s.P95Cognitive, s.MaxCognitive)
	if s.WorstFile != "" {
		fmt.Fprintf(&b, "Lowest MI: %s (%.2f)", s.WorstFile, s.MinMaintainability)
	}
	return b.String()
}

func runScanCmd(c *cli.Context) error {
	paths := getPaths(c)
	miThreshold := c.Float64("mi-threshold")
	cogThreshold := c.Int("cognitive-threshold")
	debtThreshold := c.Float64("debt-threshold")
	summaryOnly := c.Bool("summary-only")
	verbose := c.Bool("verbose")

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	verbose = verbose || cfg.Output.Verbose

	// Config thresholds apply unless overridden on the command line.
	if !c.IsSet("mi-threshold") {
		miThreshold = cfg.Thresholds.MaintainabilityWarn
	}
	if !c.IsSet("cognitive-threshold") {
		cogThreshold = cfg.Thresholds.CognitiveWarn
	}
	if !c.IsSet("debt-threshold") {
		debtThreshold = cfg.Thresholds.DebtWarnHours
	}

	scan := scanner.New(cfg)

	spinner := progress.NewSpinner("Scanning for Python files...")
	var files []string
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			spinner.FinishError(err)
			return fmt.Errorf("invalid path %s: %w", path, err)
		}
		found, err := scan.ScanDir(absPath)
		if err != nil {
			spinner.FinishError(err)
			return fmt.Errorf("failed to scan directory %s: %w", path, err)
		}
		files = append(files, found...)
	}
	spinner.FinishSuccess()

	if len(files) == 0 {
		color.Yellow("No Python files found")
		return nil
	}

	format := c.String("format")
	if !c.IsSet("format") && cfg.Output.Format != "" {
		format = cfg.Output.Format
	}
	formatter, err := output.NewFormatter(output.ParseFormat(format), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if verbose && scan.SkippedLarge() > 0 {
		formatter.Warning("%d file(s) skipped for exceeding max_file_size", scan.SkippedLarge())
	}

	opts := analyzer.ProjectOptions{Workers: c.Int("workers")}

	cacheEnabled := cfg.Cache.Enabled && !c.Bool("no-cache")
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTLHours, cacheEnabled)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if store.Enabled() {
		opts.Lookup = func(path string, content []byte) (models.AnalysisResult, bool) {
			data, ok := store.Get(path, cache.HashBytes(content))
			if !ok {
				return models.AnalysisResult{}, false
			}
			var res models.AnalysisResult
			if err := json.Unmarshal(data, &res); err != nil {
				return models.AnalysisResult{}, false
			}
			return res, true
		}
		opts.Store = func(path string, content []byte, res models.AnalysisResult) {
			data, err := json.Marshal(res)
			if err != nil {
				return
			}
			store.Set(path, cache.HashBytes(content), data)
		}
	}

	tracker := progress.NewTracker("Analyzing files...", len(files))
	opts.OnProgress = tracker.Tick
	if verbose {
		opts.OnError = func(path string, err error) {
			formatter.Error("skipped %s: %v", path, err)
		}
	}

	analysis := analyzer.AnalyzeProject(context.Background(), files, opts)
	tracker.FinishSuccess()

	var rows [][]string
	var warnings []string

	for _, fa := range analysis.Files {
		lowMI, highCog, highDebt := thresholdFlags(fa, miThreshold, cogThreshold, debtThreshold)

		miStr := fmt.Sprintf("%.2f", fa.MaintainabilityIndex)
		cogStr := fmt.Sprintf("%d", fa.CognitiveComplexity)
		debtStr := fmt.Sprintf("%.2f", fa.SqaleDebtHours)

		if lowMI {
			miStr = color.RedString("%.2f", fa.MaintainabilityIndex)
			warnings = append(warnings, fmt.Sprintf("%s - maintainability index %.2f below threshold %.2f",
				fa.Path, fa.MaintainabilityIndex, miThreshold))
		}
		if highCog {
			cogStr = color.RedString("%d", fa.CognitiveComplexity)
			warnings = append(warnings, fmt.Sprintf("%s - cognitive complexity %d exceeds threshold %d",
				fa.Path, fa.CognitiveComplexity, cogThreshold))
		}
		if highDebt {
			debtStr = color.RedString("%.2f", fa.SqaleDebtHours)
			warnings = append(warnings, fmt.Sprintf("%s - debt %.2fh exceeds threshold %.2fh",
				fa.Path, fa.SqaleDebtHours, debtThreshold))
		}

		rows = append(rows, []string{
			fa.Path,
			fmt.Sprintf("%d", fa.LinesOfCode),
			fmt.Sprintf("%d", fa.ComplexityScore),
			cogStr,
			fmt.Sprintf("%.2f", fa.HalsteadVolume),
			miStr,
			debtStr,
		})
	}

	if summaryOnly {
		rows = nil
	}

	table := output.NewTable(
		"",
		[]string{"File", "LOC", "Cyclomatic", "Cognitive", "Volume", "MI", "Debt (h)"},
		rows,
		nil,
		nil,
	)

	report := &output.Report{
		Title: "Source Metrics",
		Sections: []output.Renderable{
			table,
			&output.Section{Title: "Summary", Content: summaryContent(analysis.Summary)},
		},
		Data: analysis,
	}

	if err := formatter.Output(report); err != nil {
		return err
	}

	if formatter.Format() == output.FormatText {
		if len(warnings) > 0 {
			fmt.Fprintln(formatter.Writer())
			formatter.Warning("Warnings (%d):", len(warnings))
			for _, w := range warnings {
				fmt.Fprintf(formatter.Writer(), "  - %s\n", w)
			}
		} else {
			formatter.Success("All %d files within thresholds", analysis.Summary.TotalFiles)
		}
	}

	return nil
}
