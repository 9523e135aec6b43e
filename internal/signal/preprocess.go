package signal

import (
	"math"

	"signal-service/pkg/utils"
)

// Cleanse удаляет NaN-отсчеты, сохраняя порядок остальных.
// Пустой результат означает вырожденный сигнал: дальнейшая обработка
// должна вернуть ErrEmptySignal.
func Cleanse(data []float64) []float64 {
	result := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			result = append(result, v)
		}
	}
	return result
}

// Normalize выполняет z-score нормализацию.
// Сигнал с нулевой дисперсией возвращается без изменений,
// чтобы не порождать NaN/Inf.
func Normalize(data []float64) []float64 {
	result := make([]float64, len(data))
	copy(result, data)

	if len(data) == 0 {
		return result
	}

	mean := utils.Mean(data)
	std := utils.Std(data)
	if std <= 0 {
		return result
	}

	for i, v := range data {
		result[i] = (v - mean) / std
	}
	return result
}

// Resample приводит сигнал к целевой длине линейной интерполяцией
// по равномерной индексной сетке. При target == len(data) — точная
// идентичность; за пределы исходного диапазона интерполяция не выходит.
func Resample(data []float64, target int) []float64 {
	if target <= 0 {
		return []float64{}
	}
	if len(data) == 0 {
		return []float64{}
	}
	if target == len(data) {
		result := make([]float64, len(data))
		copy(result, data)
		return result
	}

	result := make([]float64, target)
	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if target == 1 {
		result[0] = data[0]
		return result
	}

	// Обе сетки покрывают отрезок [0, len(data)-1]
	scale := float64(len(data)-1) / float64(target-1)
	for i := 0; i < target; i++ {
		pos := float64(i) * scale
		lower := int(math.Floor(pos))
		upper := int(math.Ceil(pos))
		if upper >= len(data) {
			upper = len(data) - 1
		}
		if lower == upper {
			result[i] = data[lower]
			continue
		}
		weight := pos - float64(lower)
		result[i] = data[lower]*(1-weight) + data[upper]*weight
	}
	return result
}

// Segment нарезает сигнал на окна фиксированной длины с перекрытием.
// Шаг = max(1, int(length*(1-overlap))); неполное хвостовое окно
// отбрасывается — окна всегда полной длины.
func Segment(data []float64, length int, overlap float64) [][]float64 {
	if length <= 0 || len(data) < length {
		return [][]float64{}
	}

	step := int(float64(length) * (1 - overlap))
	if step < 1 {
		step = 1
	}

	segments := make([][]float64, 0, (len(data)-length)/step+1)
	for i := 0; i+length <= len(data); i += step {
		seg := make([]float64, length)
		copy(seg, data[i:i+length])
		segments = append(segments, seg)
	}
	return segments
}
