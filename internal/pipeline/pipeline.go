// Package pipeline runs one fetch/validate/report cycle.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rylub/api-data-validation/internal/fetcher"
	"github.com/rylub/api-data-validation/internal/model"
	"github.com/rylub/api-data-validation/internal/report"
	"github.com/rylub/api-data-validation/internal/schema"
)

// Pipeline owns the stages of a single validation run. Each run is
// independent: the schema is rebuilt per request and nothing is cached.
type Pipeline struct {
	fetcher fetcher.Fetcher
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a Pipeline around the given fetcher
func New(f fetcher.Fetcher, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		fetcher: f,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes schema derivation, fetch, validation and report building.
// Fetch and validation failures become FAIL reports; only a malformed request
// escapes as an error (an *model.InvalidRequestError). Validation failures
// are never retried.
func (p *Pipeline) Run(ctx context.Context, req model.AssetRequest) (*report.Report, error) {
	doc, err := schema.Build(req)
	if err != nil {
		return nil, err
	}

	payload, err := p.fetcher.Fetch(ctx, req)
	if err != nil {
		p.logger.Warn("run failed at fetch stage", zap.Error(err))
		return report.Fail(req, err, p.now()), nil
	}

	quotes, err := schema.Validate(payload, doc, req)
	if err != nil {
		p.logger.Warn("run failed at validation stage", zap.Error(err))
		return report.Fail(req, err, p.now()), nil
	}

	p.logger.Info("validation passed",
		zap.Strings("assets", req.Assets),
		zap.String("currency", req.Currency))

	return report.Pass(req, quotes, p.now()), nil
}
