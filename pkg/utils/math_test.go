package utils

import (
	"math"
	"testing"
)

func TestSafeFloat(t *testing.T) {
	if got := SafeFloat(math.NaN()); got != 0 {
		t.Errorf("NaN: expected 0, got %v", got)
	}
	if got := SafeFloat(math.Inf(1)); got != 0 {
		t.Errorf("+Inf: expected 0, got %v", got)
	}
	if got := SafeFloat(math.Inf(-1)); got != 0 {
		t.Errorf("-Inf: expected 0, got %v", got)
	}
	if got := SafeFloat(-2.5); got != -2.5 {
		t.Errorf("Finite value changed: got %v", got)
	}
}

func TestStdPopulation(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	// Смещенная оценка (делитель N)
	if got := Std(data); got != 2 {
		t.Errorf("Std: expected 2, got %v", got)
	}
	if got := Variance(data); got != 4 {
		t.Errorf("Variance: expected 4, got %v", got)
	}

	// Несмещенная оценка строго больше смещенной
	if got := SampleStd(data); got <= 2 {
		t.Errorf("SampleStd: expected > 2, got %v", got)
	}
}

func TestMedian(t *testing.T) {
	if got := Median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("Odd length: expected 2, got %v", got)
	}
	if got := Median([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Errorf("Even length: expected 2.5, got %v", got)
	}
	if got := Median([]float64{7}); got != 7 {
		t.Errorf("Single sample: expected 7, got %v", got)
	}
}

func TestPercentileBounds(t *testing.T) {
	data := []float64{10, 20, 30, 40}

	if got := Percentile(data, 0); got != 10 {
		t.Errorf("P0: expected 10, got %v", got)
	}
	if got := Percentile(data, 100); got != 40 {
		t.Errorf("P100: expected 40, got %v", got)
	}
	if got := Percentile(data, 50); got != 25 {
		t.Errorf("P50: expected 25, got %v", got)
	}
}

func TestSkewnessSymmetric(t *testing.T) {
	data := []float64{-2, -1, 0, 1, 2}
	if got := Skewness(data); math.Abs(got) > 1e-12 {
		t.Errorf("Symmetric data: expected 0, got %v", got)
	}

	if got := Skewness([]float64{5, 5, 5}); got != 0 {
		t.Errorf("Constant data: expected 0, got %v", got)
	}
}

func TestKurtosisConventions(t *testing.T) {
	// Два равновероятных значения: минимальный эксцесс -2
	data := []float64{0, 1, 0, 1, 0, 1, 0, 1}
	if got := Kurtosis(data); math.Abs(got-(-2)) > 1e-12 {
		t.Errorf("Bernoulli data: expected -2, got %v", got)
	}

	if got := Kurtosis([]float64{3, 3, 3}); got != 0 {
		t.Errorf("Constant data: expected 0, got %v", got)
	}
}

func TestDiff(t *testing.T) {
	got := Diff([]float64{1, 4, 2})
	want := []float64{3, -2}
	if len(got) != len(want) {
		t.Fatalf("Expected %d diffs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Diff %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if got := Diff([]float64{5}); len(got) != 0 {
		t.Errorf("Single sample: expected empty diff, got %v", got)
	}
}
