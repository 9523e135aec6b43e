package utils

import (
	"math"
	"sort"
)

// SafeFloat заменяет NaN и Inf на ноль
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	return v
}

// Mean вычисляет среднее значение
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Variance вычисляет дисперсию (смещенная оценка, делитель N)
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	mean := Mean(data)
	sumSquares := 0.0

	for _, v := range data {
		diff := v - mean
		sumSquares += diff * diff
	}

	return sumSquares / float64(len(data))
}

// Std вычисляет стандартное отклонение (смещенная оценка, делитель N)
func Std(data []float64) float64 {
	v := Variance(data)
	if math.IsNaN(v) {
		return math.NaN()
	}
	return math.Sqrt(v)
}

// SampleStd вычисляет несмещенное стандартное отклонение (делитель N-1)
func SampleStd(data []float64) float64 {
	if len(data) <= 1 {
		return math.NaN()
	}

	mean := Mean(data)
	sumSquares := 0.0

	for _, v := range data {
		diff := v - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(data)-1))
}

// Min находит минимальное значение
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max находит максимальное значение
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Percentile вычисляет процентиль массива
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	n := float64(len(sorted) - 1)
	index := (p / 100.0) * n

	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Median вычисляет медиану массива
func Median(data []float64) float64 {
	return Percentile(data, 50)
}

// Skewness вычисляет коэффициент асимметрии (смещенная оценка g1).
// Для сигнала с нулевой дисперсией возвращает 0.
func Skewness(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	mean := Mean(data)
	m2 := 0.0
	m3 := 0.0
	for _, v := range data {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= float64(len(data))
	m3 /= float64(len(data))

	if m2 <= 0 {
		return 0.0
	}
	return m3 / math.Pow(m2, 1.5)
}

// Kurtosis вычисляет эксцесс (избыточный куртозис, у нормального
// распределения 0). Для сигнала с нулевой дисперсией возвращает 0.
func Kurtosis(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	mean := Mean(data)
	m2 := 0.0
	m4 := 0.0
	for _, v := range data {
		d := v - mean
		d2 := d * d
		m2 += d2
		m4 += d2 * d2
	}
	m2 /= float64(len(data))
	m4 /= float64(len(data))

	if m2 <= 0 {
		return 0.0
	}
	return m4/(m2*m2) - 3.0
}

// Abs возвращает абсолютное значение
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Diff вычисляет разности соседних элементов
func Diff(data []float64) []float64 {
	if len(data) <= 1 {
		return []float64{}
	}

	result := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		result[i-1] = data[i] - data[i-1]
	}
	return result
}
