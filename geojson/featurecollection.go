package geojson

import "fmt"

// FeatureCollection is a list of features. An empty or nil feature list is
// valid; each contained feature is validated independently.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// NewFeatureCollection builds a FeatureCollection with the canonical type
// tag and validates it.
func NewFeatureCollection(features ...*Feature) (*FeatureCollection, error) {
	return validated(&FeatureCollection{Type: TypeFeatureCollection, Features: features})
}

func (fc *FeatureCollection) GeoJSONType() string { return fc.Type }

func (fc *FeatureCollection) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(fc.Type, TypeFeatureCollection) {
		errs = append(errs, typeError(fc.Type, TypeFeatureCollection))
	}
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		errs = append(errs, f.Validate().Errors()...)
	}
	return newValidationResult(errs)
}

func (fc *FeatureCollection) String() string {
	return fmt.Sprintf("FeatureCollection{type=%q, features=%v}", fc.Type, fc.Features)
}
