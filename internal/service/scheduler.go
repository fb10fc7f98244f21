package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/globalbiznex/biznexbot/internal/config"
)

type Scheduler struct {
	config   *config.SchedulerConfig
	logger   *zap.Logger
	dispatch *DispatchService
	ticker   *time.Ticker
	stopCh   chan struct{}
}

func NewScheduler(cfg *config.SchedulerConfig, logger *zap.Logger, dispatch *DispatchService) *Scheduler {
	return &Scheduler{
		config:   cfg,
		logger:   logger,
		dispatch: dispatch,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s.config.Disabled {
		s.logger.Info("Scheduler is disabled")
		return nil
	}

	interval, err := time.ParseDuration(s.config.SweepInterval)
	if err != nil {
		s.logger.Error("Invalid sweep interval", zap.String("interval", s.config.SweepInterval), zap.Error(err))
		return err
	}

	s.logger.Info("Starting scheduler", zap.String("sweep_interval", s.config.SweepInterval))

	s.ticker = time.NewTicker(interval)

	// Run first sweep immediately
	go func() {
		s.logger.Info("Running initial sweep")
		if err := s.runSweep(ctx); err != nil {
			s.logger.Error("Initial sweep failed", zap.Error(err))
		}
	}()

	// Start periodic sweeps
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.logger.Info("Running scheduled sweep")
				if err := s.runSweep(ctx); err != nil {
					s.logger.Error("Scheduled sweep failed", zap.Error(err))
				}
			case <-s.stopCh:
				s.logger.Info("Scheduler stopped")
				return
			case <-ctx.Done():
				s.logger.Info("Scheduler context cancelled")
				return
			}
		}
	}()

	return nil
}

func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
	s.logger.Info("Scheduler shutdown completed")
}

func (s *Scheduler) runSweep(ctx context.Context) error {
	start := time.Now()
	err := s.dispatch.ProcessPending(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error("Sweep failed",
			zap.Error(err),
			zap.Duration("duration", duration))
		return err
	}

	s.logger.Info("Sweep completed successfully",
		zap.Duration("duration", duration))
	return nil
}
