package features

import (
	"errors"
	"math"
	"testing"

	"signal-service/internal/signal"
)

// Порядок фичей — контракт с внешними scaler и моделью
func TestCTGFeatureOrder(t *testing.T) {
	want := []string{
		"mean", "std", "variance", "baseline", "stv", "ltv",
		"accel_count", "decel_count", "peak_to_peak", "max_spectrum",
		"sample_entropy", "above_baseline", "skewness", "kurtosis",
	}

	got := CTGFeatureNames()
	if len(got) != CTGFeatureCount {
		t.Fatalf("Expected %d features, got %d", CTGFeatureCount, len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Feature %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func ctgFeature(t *testing.T, vector []float64, name string) float64 {
	t.Helper()
	for i, n := range CTGFeatureNames() {
		if n == name {
			return vector[i]
		}
	}
	t.Fatalf("Unknown feature %q", name)
	return 0
}

func TestExtractCTGEmptySignal(t *testing.T) {
	_, err := ExtractCTG([]float64{})
	if !errors.Is(err, signal.ErrEmptySignal) {
		t.Fatalf("Expected ErrEmptySignal, got %v", err)
	}
}

func TestExtractCTGConstantSignal(t *testing.T) {
	data := make([]float64, 500)
	for i := range data {
		data[i] = 140
	}

	vector, err := ExtractCTG(data)
	if err != nil {
		t.Fatalf("ExtractCTG failed: %v", err)
	}
	if len(vector) != CTGFeatureCount {
		t.Fatalf("Expected %d features, got %d", CTGFeatureCount, len(vector))
	}

	if got := ctgFeature(t, vector, "baseline"); got != 140 {
		t.Errorf("Baseline: expected 140, got %v", got)
	}
	if got := ctgFeature(t, vector, "stv"); got != 0 {
		t.Errorf("STV: expected 0, got %v", got)
	}
	if got := ctgFeature(t, vector, "ltv"); got != 0 {
		t.Errorf("LTV: expected 0, got %v", got)
	}
	if got := ctgFeature(t, vector, "accel_count"); got != 0 {
		t.Errorf("Accelerations: expected 0, got %v", got)
	}
	if got := ctgFeature(t, vector, "decel_count"); got != 0 {
		t.Errorf("Decelerations: expected 0, got %v", got)
	}
	// Строгое неравенство: ни один отсчет не выше базовой линии
	if got := ctgFeature(t, vector, "above_baseline"); got != 0 {
		t.Errorf("Above-baseline fraction: expected 0, got %v", got)
	}
	if got := ctgFeature(t, vector, "skewness"); got != 0 {
		t.Errorf("Skewness: expected 0, got %v", got)
	}
	if got := ctgFeature(t, vector, "kurtosis"); got != 0 {
		t.Errorf("Kurtosis: expected 0, got %v", got)
	}
}

func TestExtractCTGShortSignals(t *testing.T) {
	for _, data := range [][]float64{{140}, {140, 150}} {
		vector, err := ExtractCTG(data)
		if err != nil {
			t.Fatalf("Length %d: unexpected error %v", len(data), err)
		}
		if len(vector) != CTGFeatureCount {
			t.Fatalf("Length %d: expected %d features, got %d", len(data), CTGFeatureCount, len(vector))
		}
		for i, v := range vector {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("Length %d: feature %d is not finite: %v", len(data), i, v)
			}
		}
	}
}

func TestDetectAccelerations(t *testing.T) {
	const baseline = 140.0

	data := []float64{
		140, 140, 140,
		160, 160, 160, // первая акцелерация
		140, 140,
		158, 157, 156, // вторая акцелерация
		140, 140,
	}

	if got := DetectAccelerations(data, baseline); got != 2 {
		t.Errorf("Expected exactly 2 accelerations, got %d", got)
	}
	if got := DetectDecelerations(data, baseline); got != 0 {
		t.Errorf("Expected 0 decelerations, got %d", got)
	}
}

func TestDetectAccelerationsContiguousCountsOnce(t *testing.T) {
	data := []float64{140, 170, 170, 170, 170, 170, 140}

	if got := DetectAccelerations(data, 140); got != 1 {
		t.Errorf("Contiguous excursion must count once, got %d", got)
	}
}

func TestDetectAccelerationsThresholdBoundary(t *testing.T) {
	// Ровно baseline+15 событием не является (строгое превышение)
	data := []float64{140, 155, 155, 140}
	if got := DetectAccelerations(data, 140); got != 0 {
		t.Errorf("Expected 0 at exact threshold, got %d", got)
	}

	data = []float64{140, 155.01, 140}
	if got := DetectAccelerations(data, 140); got != 1 {
		t.Errorf("Expected 1 just above threshold, got %d", got)
	}
}

func TestDetectDecelerations(t *testing.T) {
	const baseline = 140.0

	data := []float64{
		140, 120, 120, 140, 110, 140, 140, 115, 115, 140,
	}

	if got := DetectDecelerations(data, baseline); got != 3 {
		t.Errorf("Expected 3 decelerations, got %d", got)
	}
}

func TestExtractCTGVariability(t *testing.T) {
	// Пилообразный сигнал: |разность| постоянна и равна 4
	data := make([]float64, 200)
	for i := range data {
		if i%2 == 0 {
			data[i] = 140
		} else {
			data[i] = 144
		}
	}

	vector, err := ExtractCTG(data)
	if err != nil {
		t.Fatalf("ExtractCTG failed: %v", err)
	}

	if got := ctgFeature(t, vector, "stv"); math.Abs(got-4) > 1e-12 {
		t.Errorf("STV: expected 4, got %v", got)
	}
	// Каждое скользящее окно содержит оба уровня: LTV строго положительна
	if got := ctgFeature(t, vector, "ltv"); got <= 0 {
		t.Errorf("LTV: expected positive value, got %v", got)
	}
	if got := ctgFeature(t, vector, "peak_to_peak"); got != 4 {
		t.Errorf("Peak-to-peak: expected 4, got %v", got)
	}
}
