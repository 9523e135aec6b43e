package signal

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeInt16File(t *testing.T, path string, samples []int16) {
	t.Helper()
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
}

func TestReaderRawFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.dat")
	writeInt16File(t, path, []int16{0, 1000, -1000, 2000, -2000, 500})

	reader := NewReader()
	data, err := reader.Process(path)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(data) != 6 {
		t.Fatalf("Expected 6 samples, got %d", len(data))
	}

	// Сырой путь применяет z-score нормализацию
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	if math.Abs(sum/float64(len(data))) > 1e-6 {
		t.Errorf("Expected near-zero mean after normalization, got %v", sum/6)
	}

	// Порядок значений сохраняется
	if !(data[3] > data[1] && data[1] > data[0] && data[0] > data[2]) {
		t.Errorf("Sample ordering not preserved: %v", data)
	}
}

func TestReaderRawConstantSignal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.dat")
	writeInt16File(t, path, []int16{100, 100, 100, 100})

	reader := NewReader()
	data, err := reader.Process(path)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	// Epsilon в знаменателе: немая запись не дает NaN/Inf
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Sample %d is not finite: %v", i, v)
		}
	}
}

func TestReaderMissingFile(t *testing.T) {
	reader := NewReader()
	_, err := reader.Process(filepath.Join(t.TempDir(), "nope.dat"))

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Expected *ReadError, got %T: %v", err, err)
	}
	if readErr.Unwrap() == nil {
		t.Errorf("Expected wrapped cause, got nil")
	}
}

func TestReaderEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dat")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	reader := NewReader()
	_, err := reader.Process(path)

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Expected *ReadError for empty file, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrEmptySignal) {
		t.Errorf("Expected ErrEmptySignal cause, got %v", err)
	}
}

func TestReaderStructuredRecord(t *testing.T) {
	dir := t.TempDir()
	hea := filepath.Join(dir, "rec01.hea")
	dat := filepath.Join(dir, "rec01.dat")

	header := "# test record\n" +
		"rec01 2 250 3\n" +
		"rec01.dat 16 100(0)/mV 16 0\n" +
		"rec01.dat 16 100(0)/mV 16 0\n"
	if err := os.WriteFile(hea, []byte(header), 0o644); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}

	// Кадры из двух каналов: канал 0 = 100, 200, 300; канал 1 — шум
	writeInt16File(t, dat, []int16{100, -7, 200, -8, 300, -9})

	reader := NewReader()
	data, err := reader.Process(dat)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	// Выбирается канал 0, значения делятся на усиление
	want := []float64{1.0, 2.0, 3.0}
	if len(data) != len(want) {
		t.Fatalf("Expected %d samples, got %d", len(want), len(data))
	}
	for i := range want {
		if math.Abs(data[i]-want[i]) > 1e-12 {
			t.Errorf("Sample %d: expected %v, got %v", i, want[i], data[i])
		}
	}
}

func TestReaderStructuredBaseline(t *testing.T) {
	dir := t.TempDir()
	hea := filepath.Join(dir, "rec02.hea")
	dat := filepath.Join(dir, "rec02.dat")

	header := "rec02 1 250\n" +
		"rec02.dat 16 200(512)/mV\n"
	if err := os.WriteFile(hea, []byte(header), 0o644); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	writeInt16File(t, dat, []int16{512, 712, 312})

	reader := NewReader()
	data, err := reader.Process(dat)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := []float64{0.0, 1.0, -1.0}
	for i := range want {
		if math.Abs(data[i]-want[i]) > 1e-12 {
			t.Errorf("Sample %d: expected %v, got %v", i, want[i], data[i])
		}
	}
}

func TestReaderStructuredInvalidSampleMarker(t *testing.T) {
	dir := t.TempDir()
	hea := filepath.Join(dir, "rec03.hea")
	dat := filepath.Join(dir, "rec03.dat")

	header := "rec03 1 250\n" +
		"rec03.dat 16 100(0)/mV\n"
	if err := os.WriteFile(hea, []byte(header), 0o644); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	writeInt16File(t, dat, []int16{100, -32768, 300})

	reader := NewReader()
	data, err := reader.Process(dat)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if !math.IsNaN(data[1]) {
		t.Errorf("Expected NaN for invalid sample marker, got %v", data[1])
	}

	cleansed := Cleanse(data)
	if len(cleansed) != 2 {
		t.Errorf("Expected 2 samples after cleanse, got %d", len(cleansed))
	}
}

func TestReaderCorruptHeaderFallsBack(t *testing.T) {
	dir := t.TempDir()
	hea := filepath.Join(dir, "rec04.hea")
	dat := filepath.Join(dir, "rec04.dat")

	// Неподдерживаемый формат канала вынуждает сырой путь
	header := "rec04 1 250\n" +
		"rec04.dat 212 100(0)/mV\n"
	if err := os.WriteFile(hea, []byte(header), 0o644); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	writeInt16File(t, dat, []int16{1, 2, 3, 4})

	reader := NewReader()
	data, err := reader.Process(dat)
	if err != nil {
		t.Fatalf("Expected raw fallback to succeed, got %v", err)
	}
	if len(data) != 4 {
		t.Errorf("Expected 4 samples from raw fallback, got %d", len(data))
	}
}
