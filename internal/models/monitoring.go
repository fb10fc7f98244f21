package models

import "time"

// DispatchMetric is a single counter sample recorded during a sweep.
type DispatchMetric struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;index" json:"name"`
	Value     float64   `gorm:"not null" json:"value"`
	Platform  string    `gorm:"size:100;index" json:"platform"`
	ContentID int       `gorm:"index" json:"content_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// ErrorLog records an error that was recovered inside the dispatch sweep.
type ErrorLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;not null;index" json:"level"`
	Source    string    `gorm:"size:100;not null;index" json:"source"`
	Platform  string    `gorm:"size:100;index" json:"platform"`
	ContentID int       `gorm:"index" json:"content_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
