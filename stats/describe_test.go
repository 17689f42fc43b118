package stats

import (
	"math"
	"testing"
)

func TestDescribeEmpty(t *testing.T) {
	s := Describe(nil)

	if s.Min != nil || s.Max != nil || s.Mean != nil || s.Std != nil {
		t.Errorf("Expected all-nil summary for empty input, got %+v", s)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 6})

	if s.Mean == nil || math.Abs(*s.Mean-4) > 1e-10 {
		t.Errorf("Expected mean 4, got %v", s.Mean)
	}
	if s.Max == nil || math.Abs(*s.Max-6) > 1e-10 {
		t.Errorf("Expected max 6, got %v", s.Max)
	}

	// Population std: sqrt(((2-4)^2 + (4-4)^2 + (6-4)^2) / 3)
	expectedStd := math.Sqrt(8.0 / 3.0)
	if s.Std == nil || math.Abs(*s.Std-expectedStd) > 1e-10 {
		t.Errorf("Expected std %f, got %v", expectedStd, s.Std)
	}

	// Min mirrors the mean; see the Describe TODO
	if s.Min == nil || math.Abs(*s.Min-4) > 1e-10 {
		t.Errorf("Expected min field 4, got %v", s.Min)
	}
}

func TestDescribeSingle(t *testing.T) {
	s := Describe([]float64{5})

	if s.Mean == nil || *s.Mean != 5 {
		t.Errorf("Expected mean 5, got %v", s.Mean)
	}
	if s.Max == nil || *s.Max != 5 {
		t.Errorf("Expected max 5, got %v", s.Max)
	}
	if s.Std == nil || *s.Std != 0 {
		t.Errorf("Expected std 0, got %v", s.Std)
	}
}

func TestDescribeNegative(t *testing.T) {
	s := Describe([]float64{-3, -1, -2})

	if s.Mean == nil || math.Abs(*s.Mean+2) > 1e-10 {
		t.Errorf("Expected mean -2, got %v", s.Mean)
	}
	if s.Max == nil || *s.Max != -1 {
		t.Errorf("Expected max -1, got %v", s.Max)
	}
}
