package signal

import (
	"log/slog"
	"os"
)

// Reader загружает физиологический сигнал из файла записи.
// Основной путь — структурированная запись (пара заголовок+данные);
// при отсутствии заголовка или любой ошибке его разбора файл читается
// как сырой поток little-endian int16. Reader не удаляет и не
// переименовывает входные файлы — это зона ответственности вызывающего.
type Reader struct {
	structured source
	raw        source
}

// NewReader создает новый читатель записей
func NewReader() *Reader {
	return &Reader{
		structured: structuredRecord{},
		raw:        rawBinary{},
	}
}

// Process читает файл записи и возвращает одномерный сигнал.
// При неудаче обоих путей возвращается *ReadError с исходной причиной.
func (r *Reader) Process(path string) ([]float64, error) {
	if _, err := os.Stat(headerPath(path)); err == nil {
		data, err := r.structured.Read(path)
		if err == nil {
			return data, nil
		}
		slog.Warn("structured record parse failed, falling back to raw read",
			"path", path, "error", err)
	}

	data, err := r.raw.Read(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return data, nil
}
