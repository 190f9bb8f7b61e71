package testutil

import (
	"context"

	"github.com/rylub/api-data-validation/internal/fetcher"
	"github.com/rylub/api-data-validation/internal/model"
)

// MockFetcher is a mock implementation of the fetcher.Fetcher interface for
// testing. Calls counts how many times Fetch was invoked.
type MockFetcher struct {
	FetchFunc func(ctx context.Context, req model.AssetRequest) (map[string]any, error)
	Calls     int
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, req model.AssetRequest) (map[string]any, error) {
	m.Calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, req)
	}
	return nil, nil
}

// NewMockFetcher creates a mock fetcher that always returns the given payload
// and error
func NewMockFetcher(payload map[string]any, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context, req model.AssetRequest) (map[string]any, error) {
			return payload, err
		},
	}
}
