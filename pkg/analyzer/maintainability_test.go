package analyzer

import (
	"math"
	"testing"
)

func TestMaintainabilityIndexBoundsAndFloors(t *testing.T) {
	tests := []struct {
		name        string
		volume      float64
		cyclomatic  int
		linesOfCode int
	}{
		{"all floors", 0, 0, 0},
		{"trivial file", 10, 1, 3},
		{"large file", 50000, 80, 5000},
		{"negative inputs floored", -5, -1, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mi := maintainabilityIndex(tt.volume, tt.cyclomatic, tt.linesOfCode)
			if mi < 0 || mi > 100 {
				t.Errorf("MI %v out of [0, 100]", mi)
			}
		})
	}
}

func TestMaintainabilityIndexKnownValue(t *testing.T) {
	// All inputs at their floors: raw = 171 - 0.23, normalized to
	// 170.77 * 100 / 171 = 99.8655..., rounded to 99.87.
	if mi := maintainabilityIndex(0, 0, 0); mi != 99.87 {
		t.Errorf("expected 99.87, got %v", mi)
	}
}

func TestMaintainabilityIndexMonotonic(t *testing.T) {
	base := maintainabilityIndex(100, 5, 50)
	moreVolume := maintainabilityIndex(1000, 5, 50)
	moreBranches := maintainabilityIndex(100, 50, 50)
	moreLines := maintainabilityIndex(100, 5, 500)

	if moreVolume >= base {
		t.Errorf("higher volume should lower MI: %v >= %v", moreVolume, base)
	}
	if moreBranches >= base {
		t.Errorf("higher cyclomatic should lower MI: %v >= %v", moreBranches, base)
	}
	if moreLines >= base {
		t.Errorf("more lines should lower MI: %v >= %v", moreLines, base)
	}
}

func TestMaintainabilityIndexClampsToZero(t *testing.T) {
	if mi := maintainabilityIndex(1e12, 10000, 10000000); mi != 0 {
		t.Errorf("expected clamp to 0, got %v", mi)
	}
}

func TestSqaleDebtHours(t *testing.T) {
	tests := []struct {
		cognitive int
		expected  float64
	}{
		{0, 0},
		{1, 0.15},
		{10, 1.5},
		{15, 2.25},
		{7, 1.05},
	}

	for _, tt := range tests {
		if got := sqaleDebtHours(tt.cognitive); got != tt.expected {
			t.Errorf("cognitive %d: expected %v, got %v", tt.cognitive, tt.expected, got)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.005, 1.0},
		{1.006, 1.01},
		{99.8655, 99.87},
		{0, 0},
		{-1.006, -1.01},
	}

	for _, tt := range tests {
		if got := round2(tt.input); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("round2(%v): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}
