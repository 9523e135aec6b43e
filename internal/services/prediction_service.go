package services

import (
	"fmt"
	"log/slog"

	"signal-service/internal/features"
	"signal-service/internal/models"
	sig "signal-service/internal/signal"

	"gorm.io/gorm"
)

// Типы сигналов и соответствующие им модели
const (
	SignalTypePreterm  = "preterm"  // EHG, риск преждевременных родов
	SignalTypeAcidemia = "acidemia" // CTG, риск ацидемии плода
)

// Predictor выполняет полный конвейер предсказания: чтение записи,
// очистка, извлечение фичей, обращение к внешним моделям, рекомендации.
// Все зависимости передаются явно и только читаются после создания,
// поэтому Predictor безопасен для конкурентных запросов.
type Predictor struct {
	reader *sig.Reader
	scorer *ScorerClient
	db     *gorm.DB
}

// NewPredictor создает новый предиктор
func NewPredictor(reader *sig.Reader, scorer *ScorerClient, db *gorm.DB) *Predictor {
	return &Predictor{
		reader: reader,
		scorer: scorer,
		db:     db,
	}
}

// PredictFile выполняет предсказание по файлу записи сигнала.
// Файл не удаляется — временными файлами владеет вызывающий.
func (p *Predictor) PredictFile(signalType, path, fileName string) (*models.PredictionResponse, error) {
	data, err := p.reader.Process(path)
	if err != nil {
		return nil, err
	}

	// Структурированная запись может содержать маркеры отсутствующих
	// отсчетов; они убираются до извлечения фичей
	data = sig.Cleanse(data)
	if len(data) == 0 {
		return nil, sig.ErrEmptySignal
	}

	vector, names, err := extractFeatures(signalType, data)
	if err != nil {
		return nil, err
	}

	result, err := p.scorer.Score(signalType, vector, names)
	if err != nil {
		return nil, err
	}

	p.saveRecord(signalType, fileName, result)

	return &models.PredictionResponse{
		Prediction:      result.Prediction,
		Probability:     result.Probability,
		Recommendations: Recommendations(signalType, result.Probability),
		TopFeatures:     result.TopFeatures,
	}, nil
}

// PredictForm выполняет предсказание по анкетным данным пациента
func (p *Predictor) PredictForm(signalType string, form *models.ClinicalFormRequest) (*models.PredictionResponse, error) {
	result, err := p.scorer.Score(signalType, form.Vector(), nil)
	if err != nil {
		return nil, err
	}

	p.saveRecord(signalType, "", result)

	return &models.PredictionResponse{
		Prediction:      result.Prediction,
		Probability:     result.Probability,
		Recommendations: Recommendations(signalType, result.Probability),
	}, nil
}

// extractFeatures выбирает экстрактор по типу сигнала
func extractFeatures(signalType string, data []float64) ([]float64, []string, error) {
	switch signalType {
	case SignalTypePreterm:
		vector, err := features.ExtractEHG(data)
		return vector, features.EHGFeatureNames(), err
	case SignalTypeAcidemia:
		vector, err := features.ExtractCTG(data)
		return vector, features.CTGFeatureNames(), err
	}
	return nil, nil, fmt.Errorf("неизвестный тип сигнала: %q", signalType)
}

// saveRecord сохраняет результат анализа в историю.
// Ошибка записи логируется, но не прерывает запрос.
func (p *Predictor) saveRecord(signalType, fileName string, result *ScoreResult) {
	record := models.AnalysisRecord{
		SignalType:  signalType,
		FileName:    fileName,
		Prediction:  result.Prediction,
		Probability: result.Probability,
	}

	if err := p.db.Create(&record).Error; err != nil {
		slog.Error("failed to save analysis record",
			"signal_type", signalType, "error", err)
	}
}
