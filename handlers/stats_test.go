package handlers

import (
	"math"
	"testing"
)

func TestSummarizeProbabilities(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := summarizeProbabilities(nil)
		if s.Count != 0 || s.Mean != 0 || s.StdDev != 0 {
			t.Errorf("empty summary = %+v, want zero value", s)
		}
	})

	t.Run("single value", func(t *testing.T) {
		s := summarizeProbabilities([]float64{42})
		if s.Count != 1 {
			t.Errorf("Count = %d, want 1", s.Count)
		}
		if s.Mean != 42 || s.Median != 42 || s.Min != 42 || s.Max != 42 {
			t.Errorf("summary = %+v, want all fields 42", s)
		}
		if s.StdDev != 0 {
			t.Errorf("StdDev = %v, want 0 for single sample", s.StdDev)
		}
	})

	t.Run("consensus sample", func(t *testing.T) {
		s := summarizeProbabilities([]float64{10, 20, 90})
		if s.Count != 3 {
			t.Errorf("Count = %d, want 3", s.Count)
		}
		if math.Abs(s.Mean-40) > 1e-9 {
			t.Errorf("Mean = %v, want 40", s.Mean)
		}
		if s.Median != 20 {
			t.Errorf("Median = %v, want 20", s.Median)
		}
		if s.Min != 10 || s.Max != 90 {
			t.Errorf("Min/Max = %v/%v, want 10/90", s.Min, s.Max)
		}
		// sample stddev of {10,20,90}
		if math.Abs(s.StdDev-43.588989435) > 1e-6 {
			t.Errorf("StdDev = %v, want ~43.589", s.StdDev)
		}
	})

	t.Run("input left unsorted", func(t *testing.T) {
		probs := []float64{90, 10, 20}
		_ = summarizeProbabilities(probs)
		if probs[0] != 90 || probs[1] != 10 || probs[2] != 20 {
			t.Errorf("input mutated: %v", probs)
		}
	})
}
