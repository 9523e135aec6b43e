package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"signal-service/config"
	"signal-service/internal/models"
	"signal-service/internal/services"
	sig "signal-service/internal/signal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PredictHandler обрабатывает HTTP запросы предсказаний
type PredictHandler struct {
	predictor *services.Predictor
	uploadDir string
}

// NewPredictHandler создает новый обработчик предсказаний
func NewPredictHandler(predictor *services.Predictor, uploadDir string) *PredictHandler {
	return &PredictHandler{
		predictor: predictor,
		uploadDir: uploadDir,
	}
}

// PredictPreterm предсказывает риск преждевременных родов по EHG записи
// @Summary Предсказание риска преждевременных родов
// @Description Принимает .dat файл EHG сигнала, извлекает фичи и выполняет предсказание
// @Tags predict
// @Accept multipart/form-data
// @Produce json
// @Param signal_file formData file true "Файл записи сигнала (.dat)"
// @Success 200 {object} models.PredictionResponse "Результат предсказания"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 422 {object} models.ErrorResponse "Файл не удалось прочитать как сигнал"
// @Failure 502 {object} models.ErrorResponse "Сервис моделей недоступен"
// @Router /predict/preterm [post]
func (h *PredictHandler) PredictPreterm(c *gin.Context) {
	h.predictSignalFile(c, services.SignalTypePreterm)
}

// PredictAcidemia предсказывает риск ацидемии плода по CTG записи
// @Summary Предсказание риска ацидемии плода
// @Description Принимает .dat файл CTG сигнала, извлекает фичи и выполняет предсказание
// @Tags predict
// @Accept multipart/form-data
// @Produce json
// @Param signal_file formData file true "Файл записи сигнала (.dat)"
// @Success 200 {object} models.PredictionResponse "Результат предсказания"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 422 {object} models.ErrorResponse "Файл не удалось прочитать как сигнал"
// @Failure 502 {object} models.ErrorResponse "Сервис моделей недоступен"
// @Router /predict/acidemia [post]
func (h *PredictHandler) PredictAcidemia(c *gin.Context) {
	h.predictSignalFile(c, services.SignalTypeAcidemia)
}

func (h *PredictHandler) predictSignalFile(c *gin.Context, signalType string) {
	file, err := c.FormFile("signal_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".dat") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .dat files are allowed"})
		return
	}

	if file.Size > config.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	// Уникальное имя на запрос исключает коллизии конкурентных загрузок
	path, err := h.saveUpload(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to store uploaded file",
			"details": err.Error(),
		})
		return
	}
	defer os.Remove(path)

	response, err := h.predictor.PredictFile(signalType, path, filepath.Base(file.Filename))
	if err != nil {
		h.writePredictionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PredictHandler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	path := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// writePredictionError транслирует типизированные ошибки конвейера в
// HTTP статусы: нечитаемый или пустой сигнал — 422, недоступность
// сервиса моделей — 502, остальное — 500.
func (h *PredictHandler) writePredictionError(c *gin.Context, err error) {
	var readErr *sig.ReadError
	switch {
	case errors.As(err, &readErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "unreadable signal file",
			"details": readErr.Error(),
		})
	case errors.Is(err, sig.ErrEmptySignal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "signal contains no usable samples",
		})
	case errors.Is(err, services.ErrScorer):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "ml service error",
			"details": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "prediction error",
			"details": err.Error(),
		})
	}
}

// PredictPretermForm предсказывает риск преждевременных родов по анкете
// @Summary Предсказание риска преждевременных родов по анкетным данным
// @Tags predict
// @Accept json
// @Produce json
// @Param request body models.ClinicalFormRequest true "Анкетные данные пациента"
// @Success 200 {object} models.PredictionResponse "Результат предсказания"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Router /predict/preterm-form [post]
func (h *PredictHandler) PredictPretermForm(c *gin.Context) {
	h.predictForm(c, services.SignalTypePreterm)
}

// PredictAcidemiaForm предсказывает риск ацидемии плода по анкете
// @Summary Предсказание риска ацидемии плода по анкетным данным
// @Tags predict
// @Accept json
// @Produce json
// @Param request body models.ClinicalFormRequest true "Анкетные данные пациента"
// @Success 200 {object} models.PredictionResponse "Результат предсказания"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Router /predict/acidemia-form [post]
func (h *PredictHandler) PredictAcidemiaForm(c *gin.Context) {
	h.predictForm(c, services.SignalTypeAcidemia)
}

func (h *PredictHandler) predictForm(c *gin.Context, signalType string) {
	var req models.ClinicalFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	response, err := h.predictor.PredictForm(signalType, &req)
	if err != nil {
		h.writePredictionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /health [get]
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
