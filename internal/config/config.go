package config

import (
	yamlenv "github.com/ifuryst/go-yaml-env"

	"github.com/globalbiznex/biznexbot/pkg/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Logger    logger.Config   `yaml:"logger"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Publisher PublisherConfig `yaml:"publisher"`
	Audit     AuditConfig     `yaml:"audit"`
	Auth      AuthConfig      `yaml:"auth"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	Host     string `yaml:"host"`
	Mode     string `yaml:"mode"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

type DatabaseConfig struct {
	// Type "memory" runs entirely in-process, for local trials and tests.
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
	TimeZone string `yaml:"timezone"`
}

type SchedulerConfig struct {
	SweepInterval string `yaml:"sweep_interval"`
	Disabled      bool   `yaml:"disabled"`
	// Offset of the business timezone from UTC; due-item decisions are
	// made against this clock, not the server's.
	TimezoneOffsetHours   int `yaml:"timezone_offset_hours"`
	TimezoneOffsetMinutes int `yaml:"timezone_offset_minutes"`
}

type PublisherConfig struct {
	// Mode "simulate" (default) uses no-op publishers with deterministic
	// fake post URLs; "live" enables real platform calls where implemented.
	Mode            string `yaml:"mode"`
	DefaultHashtags string `yaml:"default_hashtags"`
	FBPageID        string `yaml:"fb_page_id"`
	FBPageToken     string `yaml:"fb_page_token"`
	LinkedInToken   string `yaml:"linkedin_token"`
	InstagramToken  string `yaml:"instagram_token"`
}

type AuditConfig struct {
	LogPath string `yaml:"log_path"`
}

type AuthConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TOTPSecret string `yaml:"totp_secret"`
}

func LoadConfig(configPath string) (*Config, error) {
	cfg, err := yamlenv.LoadConfig[Config](configPath)
	if err != nil {
		return nil, err
	}

	// Set default values
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5335
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "debug"
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.TimeZone == "" {
		cfg.Database.TimeZone = "UTC"
	}
	if cfg.Scheduler.SweepInterval == "" {
		cfg.Scheduler.SweepInterval = "5m"
	}
	if cfg.Scheduler.TimezoneOffsetHours == 0 && cfg.Scheduler.TimezoneOffsetMinutes == 0 {
		cfg.Scheduler.TimezoneOffsetHours = 5
		cfg.Scheduler.TimezoneOffsetMinutes = 30
	}
	if cfg.Publisher.Mode == "" {
		cfg.Publisher.Mode = "simulate"
	}
	if cfg.Publisher.DefaultHashtags == "" {
		cfg.Publisher.DefaultHashtags = "#globalbiznex #marketing #automation"
	}
	if cfg.Audit.LogPath == "" {
		cfg.Audit.LogPath = "post_log.md"
	}

	return cfg, nil
}
