package model

import (
	"fmt"
	"strings"
)

// InvalidRequestError indicates the caller supplied a request the pipeline
// cannot run at all (empty asset list, unrecognized currency). It is never
// converted into a FAIL report; it surfaces directly.
type InvalidRequestError struct {
	Message string
}

// Error implements the error interface
func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

// AssetRequest names the coins and the quote currency for one validation run.
// Assets are trimmed, lowercased and deduplicated in input order; the currency
// is a lowercase 3-letter code.
type AssetRequest struct {
	Assets   []string
	Currency string
}

// NewAssetRequest normalizes the raw asset identifiers and currency code and
// returns an InvalidRequestError when no usable asset remains or the currency
// is not a 3-letter code.
func NewAssetRequest(assets []string, currency string) (AssetRequest, error) {
	seen := make(map[string]struct{}, len(assets))
	normalized := make([]string, 0, len(assets))
	for _, asset := range assets {
		asset = strings.ToLower(strings.TrimSpace(asset))
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		normalized = append(normalized, asset)
	}

	if len(normalized) == 0 {
		return AssetRequest{}, &InvalidRequestError{Message: "at least one asset identifier is required"}
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if !isCurrencyCode(currency) {
		return AssetRequest{}, &InvalidRequestError{Message: fmt.Sprintf("currency %q is not a 3-letter code", currency)}
	}

	return AssetRequest{Assets: normalized, Currency: currency}, nil
}

// ChangeKey returns the payload key carrying the 24h percentage change for
// this request's currency, e.g. "usd_24h_change".
func (r AssetRequest) ChangeKey() string {
	return r.Currency + "_24h_change"
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// PriceQuote is one validated per-asset result. Change is nil when the
// upstream response omitted the 24h change field.
type PriceQuote struct {
	Price  float64
	Change *float64
}
