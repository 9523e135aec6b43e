package features

import (
	"signal-service/internal/signal"
	"signal-service/pkg/utils"
)

// EventThreshold — порог акцелераций и децелераций в единицах сигнала
// относительно базовой линии
const EventThreshold = 15.0

// ctgSteps — упорядоченная таблица фичей CTG сигнала (кардиотокограмма,
// оценка риска ацидемии плода). Ровно 14 значений.
var ctgSteps = []featureStep{
	{"mean", func(c *featureContext) float64 { return utils.Mean(c.data) }},
	{"std", func(c *featureContext) float64 { return utils.Std(c.data) }},
	{"variance", func(c *featureContext) float64 { return utils.Variance(c.data) }},
	{"baseline", func(c *featureContext) float64 { return c.baseline }},
	{"stv", func(c *featureContext) float64 { return shortTermVariability(c.data) }},
	{"ltv", func(c *featureContext) float64 { return longTermVariability(c.data) }},
	{"accel_count", func(c *featureContext) float64 {
		return float64(DetectAccelerations(c.data, c.baseline))
	}},
	{"decel_count", func(c *featureContext) float64 {
		return float64(DetectDecelerations(c.data, c.baseline))
	}},
	{"peak_to_peak", func(c *featureContext) float64 { return utils.Max(c.data) - utils.Min(c.data) }},
	{"max_spectrum", func(c *featureContext) float64 { return utils.Max(c.mags) }},
	{"sample_entropy", func(c *featureContext) float64 {
		return SampleEntropy(c.data, DefaultEntropyM, DefaultEntropyR)
	}},
	{"above_baseline", func(c *featureContext) float64 { return aboveBaselineFraction(c.data, c.baseline) }},
	{"skewness", func(c *featureContext) float64 { return utils.Skewness(c.data) }},
	{"kurtosis", func(c *featureContext) float64 { return utils.Kurtosis(c.data) }},
}

// CTGFeatureCount — длина вектора фичей CTG
const CTGFeatureCount = 14

// CTGFeatureNames возвращает имена фичей в порядке вектора
func CTGFeatureNames() []string {
	return stepNames(ctgSteps)
}

// ExtractCTG вычисляет вектор фичей CTG сигнала.
// Базовая линия оценивается медианой сигнала — упрощение клинической
// оценки базального ритма. Для пустого сигнала возвращается
// signal.ErrEmptySignal.
func ExtractCTG(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, signal.ErrEmptySignal
	}

	c := newFeatureContext(data)
	c.baseline = utils.Median(data)

	vector := make([]float64, len(ctgSteps))
	for i, step := range ctgSteps {
		vector[i] = utils.SafeFloat(step.Compute(c))
	}
	return vector, nil
}

// shortTermVariability — средний модуль разности соседних отсчетов
func shortTermVariability(data []float64) float64 {
	if len(data) <= 1 {
		return 0.0
	}

	sum := 0.0
	for _, d := range utils.Diff(data) {
		sum += utils.Abs(d)
	}
	return sum / float64(len(data)-1)
}

// longTermVariability — среднее скользящее стандартное отклонение.
// Размер окна min(60, len/10); по полным окнам, начинающимся на
// [0, len-window). При окне ≤ 1 или отсутствии окон — 0.
func longTermVariability(data []float64) float64 {
	window := len(data) / 10
	if window > 60 {
		window = 60
	}
	if window <= 1 {
		return 0.0
	}

	count := len(data) - window
	if count <= 0 {
		return 0.0
	}

	sum := 0.0
	for i := 0; i < count; i++ {
		sum += utils.Std(data[i : i+window])
	}
	return sum / float64(count)
}

// DetectAccelerations считает число акцелераций: непрерывных участков,
// где сигнал превышает baseline + EventThreshold. Каждый участок
// учитывается ровно один раз; длительность участка не моделируется —
// это упрощение относительно клинического определения события.
func DetectAccelerations(data []float64, baseline float64) int {
	count := 0
	inEvent := false

	for _, v := range data {
		if v > baseline+EventThreshold {
			if !inEvent {
				count++
				inEvent = true
			}
		} else {
			inEvent = false
		}
	}
	return count
}

// DetectDecelerations считает число децелераций: непрерывных участков,
// где сигнал опускается ниже baseline - EventThreshold
func DetectDecelerations(data []float64, baseline float64) int {
	count := 0
	inEvent := false

	for _, v := range data {
		if v < baseline-EventThreshold {
			if !inEvent {
				count++
				inEvent = true
			}
		} else {
			inEvent = false
		}
	}
	return count
}

// aboveBaselineFraction — доля отсчетов строго выше базовой линии
func aboveBaselineFraction(data []float64, baseline float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	count := 0
	for _, v := range data {
		if v > baseline {
			count++
		}
	}
	return float64(count) / float64(len(data))
}
