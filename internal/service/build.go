package service

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/globalbiznex/biznexbot/internal/config"
	"github.com/globalbiznex/biznexbot/internal/service/publisher"
	"github.com/globalbiznex/biznexbot/internal/store"
)

// BuildDispatch wires the dispatch pipeline for the configured mode:
// publishers (simulated or live), group sharer, selector, audit sink and
// monitoring. db may be nil when the record store is in-memory.
func BuildDispatch(cfg *config.Config, db *gorm.DB, recordStore store.RecordStore, logger *zap.Logger) (*DispatchService, error) {
	manager := publisher.NewManager(logger)

	var fb publisher.Publisher
	if cfg.Publisher.Mode == "live" && cfg.Publisher.FBPageID != "" && cfg.Publisher.FBPageToken != "" {
		fb = publisher.NewGraphFacebookPublisher(cfg.Publisher.FBPageID, cfg.Publisher.FBPageToken, logger)
	} else {
		if cfg.Publisher.Mode == "live" {
			logger.Warn("Live mode requested but Facebook credentials missing, simulating")
		}
		fb = publisher.NewSimulatedFacebook(logger)
	}

	// LinkedIn and Instagram have no live integration yet; both modes
	// run the simulated publishers.
	for _, p := range []publisher.Publisher{
		fb,
		publisher.NewSimulatedLinkedIn(logger),
		publisher.NewSimulatedInstagram(logger),
	} {
		if err := manager.Register(p); err != nil {
			return nil, fmt.Errorf("failed to register publisher: %w", err)
		}
	}
	manager.SetGroupSharer(publisher.NewSimulatedGroupSharer(logger))

	selector := NewSelector(&cfg.Scheduler)
	audit := NewFileAuditSink(cfg.Audit.LogPath, logger)
	monitoring := NewMonitoringService(db, logger)

	return NewDispatchService(
		logger,
		recordStore,
		manager,
		selector,
		audit,
		monitoring,
		cfg.Publisher.DefaultHashtags,
	), nil
}
