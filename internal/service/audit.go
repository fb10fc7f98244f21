package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AuditSink receives one entry per successful publish or group share.
// Recording must never abort a sweep: implementations absorb their own
// failures.
type AuditSink interface {
	Record(contentID int, platform, caption, postURL string)
}

// FileAuditSink appends entries to a markdown log file. When the primary file
// cannot be written (locked, read-only, missing directory), the entry degrades
// to a timestamped backup file next to it.
type FileAuditSink struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func NewFileAuditSink(path string, logger *zap.Logger) *FileAuditSink {
	return &FileAuditSink{path: path, logger: logger}
}

func (a *FileAuditSink) Record(contentID int, platform, caption, postURL string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Content ID: %d\n", contentID)
	fmt.Fprintf(&b, "Platform: %s\n", platform)
	fmt.Fprintf(&b, "Caption:\n%s\n", caption)
	fmt.Fprintf(&b, "Post URL: %s\n", postURL)
	b.WriteString(strings.Repeat("-", 40) + "\n")

	if err := appendToFile(a.path, b.String()); err != nil {
		backup := filepath.Join(filepath.Dir(a.path),
			fmt.Sprintf("post_log_backup_%s.md", time.Now().Format("20060102_150405")))
		a.logger.Warn("Could not write audit log, using backup file",
			zap.String("path", a.path),
			zap.String("backup", backup),
			zap.Error(err))
		if err := appendToFile(backup, b.String()); err != nil {
			a.logger.Error("Backup audit write failed as well", zap.Error(err))
		}
	}
}

func appendToFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return err
	}
	return nil
}
