package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"signal-service/internal/models"
)

// ErrScorer означает недоступность или ошибку внешнего сервиса моделей
var ErrScorer = errors.New("scorer service error")

// ScorerClient — клиент внешнего сервиса scaler+модель.
// Обученные модели — непрозрачные объекты за HTTP интерфейсом
// predict/predict_proba; этот сервис только передает им вектор фичей.
type ScorerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewScorerClient создает клиент сервиса моделей
func NewScorerClient(baseURL string, timeoutSec int) *ScorerClient {
	return &ScorerClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// ScoreRequest — запрос к сервису моделей
type ScoreRequest struct {
	SignalType   string    `json:"signal_type"`
	Features     []float64 `json:"features"`
	FeatureNames []string  `json:"feature_names"`
}

// ScoreResult — ответ сервиса моделей
type ScoreResult struct {
	Prediction  int                 `json:"prediction"`
	Probability float64             `json:"probability"`
	TopFeatures []models.TopFeature `json:"top_features"`
}

// Score отправляет вектор фичей внешнему сервису моделей
func (sc *ScorerClient) Score(signalType string, features []float64, featureNames []string) (*ScoreResult, error) {
	requestBody, err := json.Marshal(ScoreRequest{
		SignalType:   signalType,
		Features:     features,
		FeatureNames: featureNames,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := fmt.Sprintf("%s/predict", sc.baseURL)

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := sc.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScorer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: статус %d: %s", ErrScorer, resp.StatusCode, string(body))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var result ScoreResult
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("ошибка десериализации ответа: %w", err)
	}

	return &result, nil
}
