package signal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// recordHeader — разобранный заголовок структурированной записи
type recordHeader struct {
	Name       string
	SampleRate float64
	Signals    []signalSpec
}

// signalSpec — описание одного канала из строки заголовка
type signalSpec struct {
	FileName string
	Format   int
	Gain     float64
	Baseline float64
}

const (
	defaultSampleRate = 250.0
	defaultGain       = 200.0
)

// headerPath возвращает путь companion-заголовка: то же базовое имя, расширение .hea
func headerPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".hea"
}

// siblingPath возвращает путь файла данных рядом с файлом записи
func siblingPath(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

// parseHeader разбирает текстовый заголовок записи.
// Формат: строка записи "имя кол-во_сигналов [частота [кол-во_отсчетов]]",
// затем по строке на каждый канал:
// "файл формат усиление(базовая_линия)/ед_изм [нуль_АЦП ...]".
// Строки, начинающиеся с '#', являются комментариями.
func parseHeader(path string) (*recordHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия заголовка: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения заголовка: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("пустой заголовок %s", path)
	}

	header, nsig, err := parseRecordLine(lines[0])
	if err != nil {
		return nil, err
	}

	if len(lines)-1 < nsig {
		return nil, fmt.Errorf("заголовок описывает %d каналов, найдено %d строк", nsig, len(lines)-1)
	}

	for i := 0; i < nsig; i++ {
		spec, err := parseSignalLine(lines[1+i])
		if err != nil {
			return nil, err
		}
		header.Signals = append(header.Signals, spec)
	}

	return header, nil
}

func parseRecordLine(line string) (*recordHeader, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, 0, fmt.Errorf("некорректная строка записи: %q", line)
	}

	// Имя записи может содержать суффикс числа сегментов ("имя/N")
	name := strings.SplitN(fields[0], "/", 2)[0]

	nsig, err := strconv.Atoi(fields[1])
	if err != nil || nsig < 1 {
		return nil, 0, fmt.Errorf("некорректное число каналов: %q", fields[1])
	}

	fs := defaultSampleRate
	if len(fields) >= 3 {
		// Частота может иметь суффиксы "/counter(base)"
		fsField := strings.SplitN(fields[2], "/", 2)[0]
		if v, err := strconv.ParseFloat(fsField, 64); err == nil && v > 0 {
			fs = v
		}
	}

	header := &recordHeader{
		Name:       name,
		SampleRate: fs,
		Signals:    make([]signalSpec, 0, nsig),
	}
	return header, nsig, nil
}

func parseSignalLine(line string) (signalSpec, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return signalSpec{}, fmt.Errorf("некорректная строка канала: %q", line)
	}

	spec := signalSpec{
		FileName: fields[0],
		Gain:     defaultGain,
	}

	// Формат может иметь суффиксы "xN", ":skew", "+offset"
	fmtField := strings.FieldsFunc(fields[1], func(r rune) bool {
		return r == 'x' || r == ':' || r == '+'
	})[0]
	format, err := strconv.Atoi(fmtField)
	if err != nil {
		return signalSpec{}, fmt.Errorf("некорректный формат канала: %q", fields[1])
	}
	if format != 16 {
		return signalSpec{}, fmt.Errorf("неподдерживаемый формат канала: %d", format)
	}
	spec.Format = format

	baselineSet := false
	if len(fields) >= 3 {
		gain, baseline, ok := parseGainField(fields[2])
		if gain > 0 {
			spec.Gain = gain
		}
		if ok {
			spec.Baseline = baseline
			baselineSet = true
		}
	}

	// Без явной базовой линии используется нуль АЦП (пятое поле)
	if !baselineSet && len(fields) >= 5 {
		if v, err := strconv.ParseFloat(fields[4], 64); err == nil {
			spec.Baseline = v
		}
	}

	return spec, nil
}

// parseGainField разбирает поле вида "усиление(базовая_линия)/единицы".
// Возвращает усиление, базовую линию и признак ее явного присутствия.
func parseGainField(field string) (float64, float64, bool) {
	field = strings.SplitN(field, "/", 2)[0]

	var baseline float64
	baselineSet := false

	if open := strings.IndexByte(field, '('); open >= 0 {
		end := strings.IndexByte(field, ')')
		if end > open {
			if v, err := strconv.ParseFloat(field[open+1:end], 64); err == nil {
				baseline = v
				baselineSet = true
			}
		}
		field = field[:open]
	}

	gain, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, baseline, baselineSet
	}
	return gain, baseline, baselineSet
}
