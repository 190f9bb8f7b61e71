package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"

	"resty.dev/v3"

	"github.com/rylub/api-data-validation/internal/model"
)

// Fetcher retrieves the raw, unvalidated price payload for a request.
type Fetcher interface {
	Fetch(ctx context.Context, req model.AssetRequest) (map[string]any, error)
}

// Config holds the settings for talking to the price endpoint
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// PriceFetcher issues the price GET with fixed-delay retries. Attempts are
// strictly sequential: one request in flight at a time, MaxRetries+1 in total.
type PriceFetcher struct {
	cfg    Config
	client *resty.Client
	logger *zap.Logger
}

// New creates a PriceFetcher
func New(cfg Config, logger *zap.Logger) *PriceFetcher {
	return &PriceFetcher{
		cfg:    cfg,
		client: newHTTPClient(cfg, logger),
		logger: logger,
	}
}

// Fetch requests current prices for the assets in req, with the 24h change
// included. The decoded body is returned as-is; validation happens upstream.
// A *FetchError is returned once retries are exhausted.
func (f *PriceFetcher) Fetch(ctx context.Context, req model.AssetRequest) (map[string]any, error) {
	var payload map[string]any

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":                 strings.Join(req.Assets, ","),
			"vs_currencies":       req.Currency,
			"include_24hr_change": "true",
		}).
		SetResult(&payload).
		Get("")

	if err != nil {
		fetchErr := classifyError(err)
		f.logger.Error("all fetch attempts failed", zap.Error(fetchErr))
		return nil, fetchErr
	}

	if !resp.IsSuccess() {
		fetchErr := NewHTTPError(resp.StatusCode())
		f.logger.Error("all fetch attempts failed", zap.Error(fetchErr))
		return nil, fetchErr
	}

	f.logger.Info("data fetched successfully",
		zap.Int("assets", len(req.Assets)),
		zap.String("currency", req.Currency))

	return payload, nil
}

// classifyError maps a transport-level failure to its FetchError category
func classifyError(err error) *FetchError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return NewTimeoutError(err)
	case isDecodeError(err):
		return NewDecodeError(err)
	default:
		return NewNetworkError(err)
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
