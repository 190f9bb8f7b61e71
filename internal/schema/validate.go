package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/rylub/api-data-validation/internal/model"
)

// Validate checks a raw payload against the schema built for req and, on
// success, extracts one PriceQuote per requested asset. Extra unrequested
// keys in the payload are ignored. The first violated constraint is returned
// as a *ValidationError.
func Validate(payload map[string]any, doc map[string]any, req model.AssetRequest) (map[string]model.PriceQuote, error) {
	if payload == nil {
		return nil, &ValidationError{Message: "no data received from API"}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(doc), gojsonschema.NewGoLoader(payload))
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("schema could not be evaluated: %v", err)}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, &ValidationError{Field: first.Field(), Message: first.Description()}
	}

	quotes := make(map[string]model.PriceQuote, len(req.Assets))
	for _, asset := range req.Assets {
		entry, ok := payload[asset].(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: asset, Message: "entry is not an object"}
		}
		price, ok := entry[req.Currency].(float64)
		if !ok {
			return nil, &ValidationError{Field: asset, Message: fmt.Sprintf("price field %q is not a number", req.Currency)}
		}
		quote := model.PriceQuote{Price: price}
		if raw, present := entry[req.ChangeKey()]; present {
			change, ok := raw.(float64)
			if !ok {
				return nil, &ValidationError{Field: asset, Message: fmt.Sprintf("change field %q is not a number", req.ChangeKey())}
			}
			quote.Change = &change
		}
		quotes[asset] = quote
	}

	return quotes, nil
}
