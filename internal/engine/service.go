package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prgate/prgate/internal/config"
	"github.com/prgate/prgate/internal/models"
)

// ActivityFetcher is the data-plane dependency of the service; satisfied by
// github.Fetcher and by test doubles.
type ActivityFetcher interface {
	FetchContributorActivity(ctx context.Context, login string, window models.AnalysisWindow) (*models.ContributorActivitySnapshot, error)
}

// Service wires the resilient fetcher to the evaluation engine for one-shot
// evaluations. Fetch failures propagate as classified errors; a fetched
// snapshot always yields a populated result.
type Service struct {
	fetcher ActivityFetcher
	engine  *Engine
	cfg     *config.Config
	logger  *logrus.Logger
	now     func() time.Time
}

// NewService creates the evaluation service.
func NewService(fetcher ActivityFetcher, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		engine:  New(cfg, logger),
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Evaluate runs the full fetch-and-analyze pass for the author of the given
// pull request.
func (s *Service) Evaluate(ctx context.Context, prCtx models.PRContext) (*models.AnalysisResult, error) {
	window := models.NewAnalysisWindow(s.now().UTC(), s.cfg.WindowMonths)

	snapshot, err := s.fetcher.FetchContributorActivity(ctx, prCtx.Author, window)
	if err != nil {
		return nil, err
	}

	return s.engine.Analyze(snapshot, prCtx), nil
}
