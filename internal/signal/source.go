package signal

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"signal-service/pkg/utils"
)

// source читает сигнал из файла конкретного формата
type source interface {
	Read(path string) ([]float64, error)
}

// rawBinary интерпретирует файл как поток little-endian int16 без заголовка.
// Универсальный запасной вариант для любых .dat файлов.
type rawBinary struct{}

func (rawBinary) Read(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}

	// Неполный последний отсчет отбрасывается
	n := len(raw) / 2
	if n == 0 {
		return nil, ErrEmptySignal
	}

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	// Z-score нормализация; epsilon защищает от деления на ноль
	// на константной (немой) записи
	mean := utils.Mean(data)
	std := utils.Std(data)
	for i, v := range data {
		data[i] = (v - mean) / (std + 1e-8)
	}

	return data, nil
}

// structuredRecord читает пару файлов заголовок+данные (формат записей
// физиологических сигналов: строка записи, затем описание каждого канала).
// Поддерживается только 16-битный little-endian формат данных (format 16).
type structuredRecord struct{}

func (structuredRecord) Read(path string) ([]float64, error) {
	header, err := parseHeader(headerPath(path))
	if err != nil {
		return nil, err
	}

	ch := header.Signals[0]

	dataPath := siblingPath(path, ch.FileName)
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла данных %s: %w", dataPath, err)
	}

	nsig := len(header.Signals)
	total := len(raw) / 2
	frames := total / nsig
	if frames == 0 {
		return nil, ErrEmptySignal
	}

	// Отсчеты каналов чередуются внутри кадра; всегда берем канал 0,
	// остальные каналы отбрасываются
	data := make([]float64, frames)
	for i := 0; i < frames; i++ {
		d := int16(binary.LittleEndian.Uint16(raw[2*i*nsig:]))
		if d == invalidSample {
			data[i] = math.NaN()
			continue
		}
		data[i] = (float64(d) - ch.Baseline) / ch.Gain
	}

	return data, nil
}

// invalidSample — маркер отсутствующего отсчета в 16-битном формате
const invalidSample = -32768
