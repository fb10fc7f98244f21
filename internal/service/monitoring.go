package service

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/globalbiznex/biznexbot/internal/models"
)

// MonitoringService records dispatch counters and recovered errors into the
// database. With no database (memory mode) it degrades to log-only.
type MonitoringService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewMonitoringService(db *gorm.DB, logger *zap.Logger) *MonitoringService {
	return &MonitoringService{db: db, logger: logger}
}

func (m *MonitoringService) RecordMetric(name string, value float64, platform string, contentID int) {
	m.logger.Debug("Metric",
		zap.String("name", name),
		zap.Float64("value", value),
		zap.String("platform", platform),
		zap.Int("content_id", contentID))

	if m.db == nil {
		return
	}
	metric := models.DispatchMetric{
		Name:      name,
		Value:     value,
		Platform:  platform,
		ContentID: contentID,
	}
	if err := m.db.Create(&metric).Error; err != nil {
		m.logger.Error("Failed to record metric", zap.String("name", name), zap.Error(err))
	}
}

func (m *MonitoringService) RecordError(level, source, platform string, contentID int, message string) {
	m.logger.Warn("Recorded error",
		zap.String("level", level),
		zap.String("source", source),
		zap.String("platform", platform),
		zap.Int("content_id", contentID),
		zap.String("message", message))

	if m.db == nil {
		return
	}
	entry := models.ErrorLog{
		Level:     level,
		Source:    source,
		Platform:  platform,
		ContentID: contentID,
		Message:   message,
	}
	if err := m.db.Create(&entry).Error; err != nil {
		m.logger.Error("Failed to record error log", zap.Error(err))
	}
}
