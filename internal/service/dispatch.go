package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/globalbiznex/biznexbot/internal/models"
	"github.com/globalbiznex/biznexbot/internal/service/publisher"
	"github.com/globalbiznex/biznexbot/internal/store"
)

// DispatchService runs the selection-and-dispatch sweep: read a snapshot of
// the content plan, pick the due items, publish each to its platforms, log
// outcomes and write the aggregated status back.
//
// A sweep is synchronous and run-to-completion: one item is fully processed
// (all platforms, all group shares) before the next, and no single platform
// or group failure ever aborts the sweep.
type DispatchService struct {
	logger          *zap.Logger
	store           store.RecordStore
	manager         *publisher.Manager
	selector        *Selector
	audit           AuditSink
	monitoring      *MonitoringService
	defaultHashtags string
}

func NewDispatchService(
	logger *zap.Logger,
	recordStore store.RecordStore,
	manager *publisher.Manager,
	selector *Selector,
	audit AuditSink,
	monitoring *MonitoringService,
	defaultHashtags string,
) *DispatchService {
	return &DispatchService{
		logger:          logger,
		store:           recordStore,
		manager:         manager,
		selector:        selector,
		audit:           audit,
		monitoring:      monitoring,
		defaultHashtags: defaultHashtags,
	}
}

// ProcessPending performs one sweep against the current business clock.
func (s *DispatchService) ProcessPending(ctx context.Context) error {
	return s.processAt(ctx, s.selector.Now())
}

func (s *DispatchService) processAt(ctx context.Context, now time.Time) error {
	rows, err := s.store.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read content plan: %w", err)
	}

	due := s.selector.DueItems(now, rows)
	if len(due) == 0 {
		s.logger.Info("No pending content due, nothing to do")
		return nil
	}

	s.logger.Info("Processing due content", zap.Int("count", len(due)))
	s.monitoring.RecordMetric("items_due", float64(len(due)), "", 0)

	for _, row := range due {
		s.processItem(ctx, row)
	}
	return nil
}

func (s *DispatchService) processItem(ctx context.Context, row store.Row) {
	item := row.Item

	platforms := splitList(item.Platforms)
	if len(platforms) == 0 {
		s.logger.Warn("No platforms specified, marking item",
			zap.Int("content_id", item.ContentID))
		s.updateStatus(row.Key, item.ContentID, models.StatusNoPlatforms)
		return
	}

	allSuccess := true
	for _, platform := range platforms {
		caption := BuildCaption(platform, item.Idea, item.Caption, item.Hashtags, s.defaultHashtags)

		pub, err := s.manager.Resolve(platform)
		if err != nil {
			s.logger.Warn("Platform not implemented, skipping",
				zap.String("platform", platform),
				zap.Int("content_id", item.ContentID))
			s.monitoring.RecordError("WARN", "dispatch", platform, item.ContentID, err.Error())
			allSuccess = false
			continue
		}

		postURL, err := pub.Publish(ctx, caption)
		if err != nil || postURL == "" {
			if err == nil {
				err = fmt.Errorf("publisher returned no post URL")
			}
			s.logger.Error("Publish failed",
				zap.String("platform", platform),
				zap.Int("content_id", item.ContentID),
				zap.Error(err))
			s.monitoring.RecordError("ERROR", "publisher", platform, item.ContentID, err.Error())
			s.monitoring.RecordMetric("publish_failure", 1, platform, item.ContentID)
			allSuccess = false
			continue
		}

		s.logger.Info("Published",
			zap.String("platform", platform),
			zap.Int("content_id", item.ContentID),
			zap.String("post_url", postURL))
		s.monitoring.RecordMetric("publish_success", 1, platform, item.ContentID)
		s.recordOutcome(item.ContentID, platform, caption, postURL)

		if publisher.IsFacebookAlias(platform) {
			s.shareToGroups(ctx, item, caption)
		}
	}

	status := models.StatusPosted
	if !allSuccess {
		status = models.StatusPartial
	}
	s.updateStatus(row.Key, item.ContentID, status)
}

// shareToGroups fans a successful Facebook post out to the item's named
// groups. Group outcomes never change the item's aggregate status.
func (s *DispatchService) shareToGroups(ctx context.Context, item models.ContentItem, caption string) {
	groups := splitList(item.Groups)
	if len(groups) == 0 {
		return
	}

	sharer, ok := s.manager.GroupSharer()
	if !ok {
		s.logger.Warn("No group sharer configured, skipping group shares",
			zap.Int("content_id", item.ContentID))
		return
	}

	for _, group := range groups {
		groupURL, err := sharer.ShareToGroup(ctx, group, caption)
		if err != nil {
			s.logger.Error("Group share failed",
				zap.String("group", group),
				zap.Int("content_id", item.ContentID),
				zap.Error(err))
			s.monitoring.RecordError("ERROR", "group_share", group, item.ContentID, err.Error())
			continue
		}

		s.monitoring.RecordMetric("group_share", 1, group, item.ContentID)
		s.recordOutcome(item.ContentID, "FB-Group: "+group, caption, groupURL)
	}
}

// recordOutcome appends to both the post log and the audit sink.
func (s *DispatchService) recordOutcome(contentID int, platform, caption, postURL string) {
	entry := models.PostLogEntry{
		Timestamp: time.Now().Format(models.PostLogTimeFormat),
		ContentID: contentID,
		Platform:  platform,
		Caption:   caption,
		PostURL:   postURL,
	}
	if err := s.store.AppendPostLog(entry); err != nil {
		s.logger.Error("Failed to append post log entry",
			zap.Int("content_id", contentID),
			zap.Error(err))
	}
	s.audit.Record(contentID, platform, caption, postURL)
}

func (s *DispatchService) updateStatus(key uint, contentID int, status string) {
	if err := s.store.UpdateField(key, "status", status); err != nil {
		s.logger.Error("Failed to update item status",
			zap.Int("content_id", contentID),
			zap.String("status", status),
			zap.Error(err))
		return
	}
	s.logger.Info("Updated item status",
		zap.Int("content_id", contentID),
		zap.String("status", status))
}

// splitList splits comma-separated text, trimming entries and dropping
// empties.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
