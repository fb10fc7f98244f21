package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globalbiznex/biznexbot/internal/config"
	"github.com/globalbiznex/biznexbot/internal/models"
)

func NewDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host, cfg.Username, cfg.Password, cfg.Database, cfg.Port, cfg.SSLMode, cfg.TimeZone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate the schema
	if err := db.AutoMigrate(
		&models.ContentItem{},
		&models.PostLogEntry{},
		&models.DispatchMetric{},
		&models.ErrorLog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// GormStore is the postgres-backed record store. Row keys are primary keys.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Append(item models.ContentItem) (int, error) {
	// Rows with an unset content id do not participate in the max.
	var maxID int
	if err := s.db.Model(&models.ContentItem{}).
		Select("COALESCE(MAX(content_id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("failed to compute next content id: %w", err)
	}
	if maxID < 0 {
		maxID = 0
	}

	item.ID = 0
	item.ContentID = maxID + 1
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	if err := s.db.Create(&item).Error; err != nil {
		return 0, fmt.Errorf("failed to append content item: %w", err)
	}
	return item.ContentID, nil
}

func (s *GormStore) ReadAll() ([]Row, error) {
	var items []models.ContentItem
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to read content items: %w", err)
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{Key: item.ID, Item: item})
	}
	return rows, nil
}

func (s *GormStore) UpdateField(key uint, field, value string) error {
	res := s.db.Model(&models.ContentItem{}).Where("id = ?", key).Update(field, value)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s for row %d: %w", field, key, res.Error)
	}
	return nil
}

func (s *GormStore) AppendPostLog(entry models.PostLogEntry) error {
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append post log entry: %w", err)
	}
	return nil
}

func (s *GormStore) PostLog() ([]models.PostLogEntry, error) {
	var entries []models.PostLogEntry
	if err := s.db.Order("id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read post log: %w", err)
	}
	return entries, nil
}
