package main

import (
	"fmt"

	"github.com/augurhq/augur/internal/output"
	"github.com/augurhq/augur/pkg/analyzer"
	"github.com/urfave/cli/v2"
)

func fileCmd() *cli.Command {
	return &cli.Command{
		Name:      "file",
		Usage:     "Analyze a single Python file in detail",
		ArgsUsage: "<path>",
		Action:    runFileCmd,
	}
}

func runFileCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one file path")
	}
	path := c.Args().First()

	a := analyzer.New()
	defer a.Close()

	fa, err := a.AnalyzeFile(path)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON || formatter.Format() == output.FormatTOON {
		return formatter.Output(fa)
	}

	rating := fa.MaintainabilityRating()
	if formatter.Colored() {
		rating = output.RatingColor(fa.MaintainabilityRating(), rating)
	}

	rows := [][]string{
		{"Nodes", fmt.Sprintf("%d", fa.NodeCount)},
		{"Lines of code", fmt.Sprintf("%d", fa.LinesOfCode)},
		{"Cyclomatic", fmt.Sprintf("%d", fa.ComplexityScore)},
		{"Cognitive", fmt.Sprintf("%d", fa.CognitiveComplexity)},
		{"Halstead volume", fmt.Sprintf("%.2f", fa.HalsteadVolume)},
		{"Maintainability", fmt.Sprintf("%.2f (%s)", fa.MaintainabilityIndex, rating)},
		{"SQALE debt", fmt.Sprintf("%.2f hours", fa.SqaleDebtHours)},
	}

	table := output.NewTable(fa.Path, []string{"Metric", "Value"}, rows, nil, fa)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if fa.Description != nil && formatter.Format() == output.FormatText {
		formatter.Info("Docstring: %s", *fa.Description)
	}

	return nil
}
