package features

import "math"

// magnitudeSpectrum вычисляет модули дискретного преобразования Фурье.
// Прямое ДПФ за O(N²): длина бинов и их частоты должны точно совпадать
// с длиной сигнала, поэтому дополнение нулями до степени двойки не
// применяется. Для типичных длин сигнала это приемлемо.
func magnitudeSpectrum(data []float64) []float64 {
	n := len(data)
	mags := make([]float64, n)

	for k := 0; k < n; k++ {
		re := 0.0
		im := 0.0
		for t, v := range data {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += v * math.Cos(angle)
			im += v * math.Sin(angle)
		}
		mags[k] = math.Hypot(re, im)
	}
	return mags
}

// binFrequencies возвращает нормированные частоты бинов ДПФ в долях
// частоты дискретизации: [0, 1, ..., (n-1)/2, -(n/2), ..., -1] / n.
// Порядок и знаки соответствуют общепринятому соглашению ДПФ.
func binFrequencies(n int) []float64 {
	freqs := make([]float64, n)
	half := (n + 1) / 2
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) / float64(n)
	}
	for i := half; i < n; i++ {
		freqs[i] = float64(i-n) / float64(n)
	}
	return freqs
}

// bandMagnitude суммирует модули спектра в полосе [lo, hi) нормированной
// частоты. Границы полос фиксированы и не пересчитываются под частоту
// дискретизации файла: это принятое доменное допущение, полосы на 0.5 и
// выше при нормированных частотах пусты.
func bandMagnitude(mags, freqs []float64, lo, hi float64) float64 {
	sum := 0.0
	for i, f := range freqs {
		if f >= lo && f < hi {
			sum += mags[i]
		}
	}
	return sum
}

// dominantFrequency возвращает нормированную частоту бина с наибольшим
// модулем в первой половине спектра, исключая постоянную составляющую
func dominantFrequency(mags, freqs []float64) float64 {
	half := len(mags) / 2
	if half < 2 {
		return 0.0
	}

	best := 1
	for i := 2; i < half; i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	return freqs[best]
}
