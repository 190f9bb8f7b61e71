// Package schema derives a JSON Schema document for a set of requested assets
// and validates fetched payloads against it.
package schema

import (
	"github.com/rylub/api-data-validation/internal/model"
)

// Build generates the schema for one request: an object with a property per
// requested asset, each requiring a non-negative numeric price in the request
// currency and tolerating an optional numeric 24h change. Regenerated per
// request, never cached.
func Build(req model.AssetRequest) (map[string]any, error) {
	if len(req.Assets) == 0 {
		return nil, &model.InvalidRequestError{Message: "at least one asset identifier is required"}
	}

	properties := make(map[string]any, len(req.Assets))
	for _, asset := range req.Assets {
		properties[asset] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				req.Currency: map[string]any{
					"type":    "number",
					"minimum": 0,
				},
				req.ChangeKey(): map[string]any{
					"type": "number",
				},
			},
			"required": []string{req.Currency},
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   req.Assets,
	}, nil
}
