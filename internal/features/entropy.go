package features

import (
	"math"

	"signal-service/pkg/utils"
)

// Параметры sample entropy по умолчанию
const (
	DefaultEntropyM = 2
	DefaultEntropyR = 0.2
)

// SampleEntropy вычисляет sample entropy — нелинейную меру сложности
// сигнала. Низкая энтропия соответствует периодичному сигналу, высокая —
// шумоподобному. m — длина шаблона, r — допуск в долях стандартного
// отклонения. Функция никогда не возвращает ошибку: на коротком сигнале
// (< 10 отсчетов) и на любом вырожденном случае результат равен 0.
//
// Сложность O(N²·m) — приемлемо для типичных длин сигнала (сотни —
// единицы тысяч отсчетов), известный предел масштабирования.
func SampleEntropy(data []float64, m int, r float64) float64 {
	n := len(data)
	if n < 10 || m < 1 {
		return 0.0
	}

	// Локальная z-score нормализация; исходный сигнал не изменяется
	mean := utils.Mean(data)
	std := utils.Std(data)
	if std <= 0 || math.IsNaN(std) {
		return 0.0
	}

	norm := make([]float64, n)
	for i, v := range data {
		norm[i] = (v - mean) / std
	}

	// Допуск в долях стандартного отклонения нормированного сигнала
	tolerance := r * utils.Std(norm)

	phiM := phi(norm, m, tolerance)
	phiM1 := phi(norm, m+1, tolerance)

	if phiM <= 0 || phiM1 <= 0 {
		return 0.0
	}

	result := -math.Log(phiM1 / phiM)
	return utils.SafeFloat(result)
}

// phi считает суммарное число пар шаблонов длины m, расстояние Чебышева
// между которыми не превышает tolerance. Совпадения шаблона с самим
// собой исключаются.
func phi(data []float64, m int, tolerance float64) float64 {
	count := len(data) - m + 1
	if count <= 0 {
		return 0
	}

	matches := 0
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			if i == j {
				continue
			}
			if chebyshev(data[i:i+m], data[j:j+m]) <= tolerance {
				matches++
			}
		}
	}
	return float64(matches)
}

// chebyshev — максимум поэлементных абсолютных разностей
func chebyshev(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		d := utils.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}
