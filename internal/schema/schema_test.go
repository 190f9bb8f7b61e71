package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rylub/api-data-validation/internal/model"
)

func mustRequest(t *testing.T, assets []string, currency string) model.AssetRequest {
	t.Helper()
	req, err := model.NewAssetRequest(assets, currency)
	require.NoError(t, err)
	return req
}

func TestBuild_RequiresEveryAsset(t *testing.T) {
	req := mustRequest(t, []string{"bitcoin", "ethereum", "solana"}, "usd")

	doc, err := Build(req)
	require.NoError(t, err)

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, req.Assets, doc["required"])

	properties, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, properties, 3)
	for _, asset := range req.Assets {
		entry, ok := properties[asset].(map[string]any)
		require.True(t, ok, "missing property for %s", asset)
		assert.Equal(t, []string{"usd"}, entry["required"])
	}
}

func TestBuild_EmptyRequest(t *testing.T) {
	_, err := Build(model.AssetRequest{Currency: "usd"})
	require.Error(t, err)
	var invalidErr *model.InvalidRequestError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestValidate_Pass(t *testing.T) {
	req := mustRequest(t, []string{"bitcoin", "ethereum"}, "usd")
	doc, err := Build(req)
	require.NoError(t, err)

	payload := map[string]any{
		"bitcoin":  map[string]any{"usd": 119192.0, "usd_24h_change": 2.08},
		"ethereum": map[string]any{"usd": 3360.86, "usd_24h_change": 9.47},
	}

	quotes, err := Validate(payload, doc, req)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, 119192.0, quotes["bitcoin"].Price)
	require.NotNil(t, quotes["bitcoin"].Change)
	assert.Equal(t, 2.08, *quotes["bitcoin"].Change)
	assert.Equal(t, 3360.86, quotes["ethereum"].Price)
}

func TestValidate_MissingChangeIsNotAFailure(t *testing.T) {
	req := mustRequest(t, []string{"bitcoin"}, "usd")
	doc, err := Build(req)
	require.NoError(t, err)

	payload := map[string]any{
		"bitcoin": map[string]any{"usd": 30000.0},
	}

	quotes, err := Validate(payload, doc, req)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, quotes["bitcoin"].Price)
	assert.Nil(t, quotes["bitcoin"].Change)
}

func TestValidate_ExtraKeysIgnored(t *testing.T) {
	req := mustRequest(t, []string{"bitcoin"}, "usd")
	doc, err := Build(req)
	require.NoError(t, err)

	payload := map[string]any{
		"bitcoin":  map[string]any{"usd": 30000.0},
		"dogecoin": map[string]any{"usd": 0.07},
	}

	quotes, err := Validate(payload, doc, req)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.NotContains(t, quotes, "dogecoin")
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		assets  []string
		payload map[string]any
		mention string
	}{
		{
			name:    "missing requested asset",
			assets:  []string{"doesnotexist"},
			payload: map[string]any{"bitcoin": map[string]any{"usd": 30000.0}},
			mention: "doesnotexist",
		},
		{
			name:    "non-numeric price",
			assets:  []string{"bitcoin"},
			payload: map[string]any{"bitcoin": map[string]any{"usd": "30000"}},
			mention: "usd",
		},
		{
			name:    "negative price",
			assets:  []string{"bitcoin"},
			payload: map[string]any{"bitcoin": map[string]any{"usd": -1000.0}},
			mention: "usd",
		},
		{
			name:    "non-numeric change",
			assets:  []string{"bitcoin"},
			payload: map[string]any{"bitcoin": map[string]any{"usd": 30000.0, "usd_24h_change": "n/a"}},
			mention: "usd_24h_change",
		},
		{
			name:    "entry not an object",
			assets:  []string{"bitcoin"},
			payload: map[string]any{"bitcoin": 30000.0},
			mention: "bitcoin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mustRequest(t, tt.assets, "usd")
			doc, err := Build(req)
			require.NoError(t, err)

			_, err = Validate(tt.payload, doc, req)
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tt.mention)
		})
	}
}

func TestValidate_NilPayload(t *testing.T) {
	req := mustRequest(t, []string{"bitcoin"}, "usd")
	doc, err := Build(req)
	require.NoError(t, err)

	_, err = Validate(nil, doc, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data received")
}
