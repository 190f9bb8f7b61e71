package fetcher

import (
	"go.uber.org/zap"

	"resty.dev/v3"
)

// newHTTPClient creates the HTTP client for the quote endpoint. The retry wait
// is fixed: min and max wait are equal, so resty never grows the delay between
// attempts.
func newHTTPClient(cfg Config, logger *zap.Logger) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.RetryDelay).
		SetRetryMaxWaitTime(cfg.RetryDelay).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook(logger))

	return client
}

// retryCondition treats any transport error and any non-success status as
// transient. Schema validation failures never reach this layer.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return !r.IsSuccess()
}

// retryHook logs each retry attempt with its number for observability
func retryHook(logger *zap.Logger) func(*resty.Response, error) {
	return func(r *resty.Response, err error) {
		if err != nil {
			logger.Warn("retrying request due to error",
				zap.String("url", r.Request.URL),
				zap.Int("attempt", r.Request.Attempt),
				zap.Error(err))
			return
		}

		logger.Warn("retrying request due to status code",
			zap.String("url", r.Request.URL),
			zap.Int("attempt", r.Request.Attempt),
			zap.Int("status_code", r.StatusCode()))
	}
}
