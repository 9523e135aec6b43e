package features

import (
	"math"

	"signal-service/internal/signal"
	"signal-service/pkg/utils"
)

// ehgSteps — упорядоченная таблица фичей EHG сигнала (электрогистеро-
// грамма, оценка риска преждевременных родов). Ровно 16 значений:
// временная область, статистика распределения, спектральные полосы и
// нелинейная сложность.
var ehgSteps = []featureStep{
	{"mean", func(c *featureContext) float64 { return utils.Mean(c.data) }},
	{"std", func(c *featureContext) float64 { return utils.Std(c.data) }},
	{"variance", func(c *featureContext) float64 { return utils.Variance(c.data) }},
	{"rms", func(c *featureContext) float64 { return rootMeanSquare(c.data) }},
	{"peak_to_peak", func(c *featureContext) float64 { return utils.Max(c.data) - utils.Min(c.data) }},
	{"median", func(c *featureContext) float64 { return utils.Median(c.data) }},
	{"skewness", func(c *featureContext) float64 { return utils.Skewness(c.data) }},
	{"kurtosis", func(c *featureContext) float64 { return utils.Kurtosis(c.data) }},
	{"band_power_low", func(c *featureContext) float64 { return bandMagnitude(c.mags, c.freqs, 0.2, 0.5) }},
	{"band_power_mid", func(c *featureContext) float64 { return bandMagnitude(c.mags, c.freqs, 0.5, 1.0) }},
	{"band_power_high", func(c *featureContext) float64 { return bandMagnitude(c.mags, c.freqs, 1.0, 4.0) }},
	{"dominant_freq", func(c *featureContext) float64 { return dominantFrequency(c.mags, c.freqs) }},
	{"zero_crossing_rate", func(c *featureContext) float64 { return zeroCrossingRate(c.data) }},
	{"energy", func(c *featureContext) float64 { return signalEnergy(c.data) }},
	{"autocorr_lag1", func(c *featureContext) float64 { return autocorrLag1(c.data) }},
	{"sample_entropy", func(c *featureContext) float64 {
		return SampleEntropy(c.data, DefaultEntropyM, DefaultEntropyR)
	}},
}

// EHGFeatureCount — длина вектора фичей EHG
const EHGFeatureCount = 16

// EHGFeatureNames возвращает имена фичей в порядке вектора
func EHGFeatureNames() []string {
	return stepNames(ehgSteps)
}

// ExtractEHG вычисляет вектор фичей EHG сигнала.
// Для пустого сигнала возвращается signal.ErrEmptySignal; на любом
// непустом сигнале (включая константный и длины 1) вектор всегда
// содержит ровно EHGFeatureCount конечных значений.
func ExtractEHG(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, signal.ErrEmptySignal
	}

	c := newFeatureContext(data)
	vector := make([]float64, len(ehgSteps))
	for i, step := range ehgSteps {
		vector[i] = utils.SafeFloat(step.Compute(c))
	}
	return vector, nil
}

// rootMeanSquare вычисляет среднеквадратичное значение
func rootMeanSquare(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return math.Sqrt(signalEnergy(data) / float64(len(data)))
}

// signalEnergy — сумма квадратов отсчетов
func signalEnergy(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v * v
	}
	return sum
}

// zeroCrossingRate — доля соседних пар отсчетов со сменой знака.
// Переход через точный ноль считается сменой знака с обеих сторон.
func zeroCrossingRate(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}

	count := 0
	for i := 1; i < len(data); i++ {
		if signOf(data[i]) != signOf(data[i-1]) {
			count++
		}
	}
	return float64(count) / float64(len(data))
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// autocorrLag1 — нормированная автокорреляция с лагом 1.
// Ноль, если автокорреляция с нулевым лагом равна нулю.
func autocorrLag1(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}

	r0 := 0.0
	r1 := 0.0
	for i, v := range data {
		r0 += v * v
		if i+1 < len(data) {
			r1 += v * data[i+1]
		}
	}

	if r0 == 0 {
		return 0.0
	}
	return r1 / r0
}
