package features

// featureStep — один именованный шаг расчета фичи. Порядок шагов в
// таблице и есть порядок значений в векторе: внешние scaler и модель
// индексируют фичи позиционно, поэтому перестановка шагов — ломающее
// изменение контракта.
type featureStep struct {
	Name    string
	Compute func(c *featureContext) float64
}

// featureContext хранит сигнал и разделяемые между шагами промежуточные
// результаты, чтобы спектр не пересчитывался каждым шагом заново
type featureContext struct {
	data     []float64
	mags     []float64
	freqs    []float64
	baseline float64
}

func newFeatureContext(data []float64) *featureContext {
	return &featureContext{
		data:  data,
		mags:  magnitudeSpectrum(data),
		freqs: binFrequencies(len(data)),
	}
}

func stepNames(steps []featureStep) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}
