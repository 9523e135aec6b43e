package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalysisRecord — сохраненный результат анализа сигнала
type AnalysisRecord struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	SignalType  string    `gorm:"not null;index" json:"signal_type"`
	FileName    string    `json:"file_name"`
	Prediction  int       `json:"prediction"`
	Probability float64   `json:"probability"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// TableName устанавливает имя таблицы
func (AnalysisRecord) TableName() string {
	return "analysis_records"
}

// BeforeCreate устанавливает ID перед созданием
func (r *AnalysisRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
