package models

import (
	"time"

	"gorm.io/gorm"
)

// Content item status values. Everything except pending is terminal:
// partial and no_platforms items are left for manual requeue.
const (
	StatusPending     = "pending"
	StatusPosted      = "posted"
	StatusPartial     = "partial"
	StatusNoPlatforms = "no_platforms"
)

// ContentItem is one row of the content plan. Date, Time, Platforms and
// Groups stay as text at the store boundary: that is the format the item was
// authored in, and the selector re-normalizes on every sweep.
type ContentItem struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	ContentID int            `gorm:"uniqueIndex;not null" json:"id"`
	Date      string         `gorm:"size:50" json:"date"`
	Time      string         `gorm:"size:20" json:"time"`
	Platforms string         `gorm:"size:255;not null" json:"platforms"`
	Idea      string         `gorm:"type:text;not null" json:"idea"`
	Caption   string         `gorm:"type:text" json:"caption"`
	ImageURL  string         `gorm:"size:2048" json:"image_url"`
	Hashtags  string         `gorm:"size:500" json:"hashtags"`
	Groups    string         `gorm:"size:500" json:"groups"`
	Status    string         `gorm:"size:50;default:'pending';index" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostLogEntry records one successful publish or group share. Append-only.
type PostLogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp string    `gorm:"size:50;not null" json:"timestamp"`
	ContentID int       `gorm:"not null;index" json:"content_id"`
	Platform  string    `gorm:"size:255;not null" json:"platform"`
	Caption   string    `gorm:"type:text" json:"caption"`
	PostURL   string    `gorm:"size:2048" json:"post_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// PostLogTimeFormat matches the timestamp written into PostLogEntry rows.
const PostLogTimeFormat = "2006-01-02 15:04:05"
