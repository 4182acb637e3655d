package geojson

import (
	"encoding/json"
	"fmt"
)

// Feature pairs a geometry with an optional id and free-form properties.
// Properties are never validated; the geometry must be present and valid.
type Feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id,omitempty"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// NewFeature builds a Feature with the canonical type tag and validates it.
// A nil properties map is replaced with an empty one.
func NewFeature(id string, geometry Geometry, properties map[string]any) (*Feature, error) {
	if properties == nil {
		properties = map[string]any{}
	}
	return validated(&Feature{Type: TypeFeature, ID: id, Geometry: geometry, Properties: properties})
}

func (f *Feature) GeoJSONType() string { return f.Type }

// Property returns the named property, or nil when absent.
func (f *Feature) Property(name string) any {
	return f.Properties[name]
}

func (f *Feature) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(f.Type, TypeFeature) {
		errs = append(errs, typeError(f.Type, TypeFeature))
	}
	if f.Geometry == nil {
		errs = append(errs, errorOf("geometry", "geometry should not be empty/blank", "geometry.invalid.empty"))
	} else {
		errs = append(errs, f.Geometry.Validate().Errors()...)
	}
	return newValidationResult(errs)
}

// UnmarshalJSON resolves the contained geometry polymorphically. A null or
// absent geometry decodes to nil and is reported by Validate, not here.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       string          `json:"type"`
		ID         string          `json:"id"`
		Geometry   json.RawMessage `json:"geometry"`
		Properties map[string]any  `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Type = raw.Type
	f.ID = raw.ID
	f.Properties = raw.Properties
	f.Geometry = nil
	if len(raw.Geometry) > 0 && string(raw.Geometry) != "null" {
		g, err := UnmarshalGeometry(raw.Geometry)
		if err != nil {
			return fmt.Errorf("geometry: %w", err)
		}
		f.Geometry = g
	}
	return nil
}

func (f *Feature) String() string {
	return fmt.Sprintf("Feature{type=%q, id=%q, geometry=%v, properties=%v}", f.Type, f.ID, f.Geometry, f.Properties)
}
