package models

// PredictionResponse — результат предсказания для клиента
type PredictionResponse struct {
	Prediction      int          `json:"prediction" example:"1"`        // Класс (0 — низкий риск, 1 — высокий)
	Probability     float64      `json:"probability" example:"0.82"`    // Вероятность положительного класса
	Recommendations []string     `json:"recommendations"`               // Рекомендации по уровню риска
	TopFeatures     []TopFeature `json:"top_features,omitempty"`        // Наиболее значимые фичи
}

// TopFeature — вклад одной фичи в предсказание
type TopFeature struct {
	Feature  string  `json:"feature" example:"sample_entropy"`
	Value    float64 `json:"value"`
	AbsValue float64 `json:"abs_value"`
}

// ErrorResponse стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"validation error"`                    // Сообщение об ошибке
	Details string `json:"details,omitempty" example:"field validation failed"` // Дополнительные детали
}

// ClinicalFormRequest — анкетные данные пациента для предсказания без
// файла сигнала. Порядок полей в векторе фиксирован и согласован с
// внешней моделью.
type ClinicalFormRequest struct {
	MaternalAge         float64 `json:"maternal_age" binding:"required"`
	GestationalAge      float64 `json:"gestational_age" binding:"required"`
	SystolicBP          float64 `json:"systolic_bp" binding:"required"`
	DiastolicBP         float64 `json:"diastolic_bp" binding:"required"`
	Weight              float64 `json:"weight" binding:"required"`
	Height              float64 `json:"height" binding:"required"`
	BMI                 float64 `json:"bmi" binding:"required"`
	PreviousPregnancies float64 `json:"previous_pregnancies"`
	Diabetes            float64 `json:"diabetes"`
}

// Vector возвращает анкетные поля в контрактном порядке
func (r *ClinicalFormRequest) Vector() []float64 {
	return []float64{
		r.MaternalAge,
		r.GestationalAge,
		r.SystolicBP,
		r.DiastolicBP,
		r.Weight,
		r.Height,
		r.BMI,
		r.PreviousPregnancies,
		r.Diabetes,
	}
}
