package geojson

import (
	"encoding/json"
	"fmt"
)

// GeometryCollection is a heterogeneous list of geometries. Members may not
// themselves be geometry collections; nesting is rejected at validation
// time, not at decode time.
type GeometryCollection struct {
	Type       string     `json:"type"`
	Geometries []Geometry `json:"geometries"`
}

// NewGeometryCollection builds a GeometryCollection with the canonical type
// tag and validates it, including the anti-nesting rule.
func NewGeometryCollection(geometries ...Geometry) (*GeometryCollection, error) {
	return validated(&GeometryCollection{Type: TypeGeometryCollection, Geometries: geometries})
}

func (gc *GeometryCollection) GeoJSONType() string { return gc.Type }
func (gc *GeometryCollection) geometry()           {}

func (gc *GeometryCollection) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(gc.Type, TypeGeometryCollection) {
		errs = append(errs, typeError(gc.Type, TypeGeometryCollection))
	}
	for _, g := range gc.Geometries {
		if g != nil && g.GeoJSONType() == TypeGeometryCollection {
			errs = append(errs, errorOf("geometries", "Field 'geometries' must not have nested 'GeometryCollection'", "geometries.invalid.nested.geometry"))
			break
		}
	}
	for _, g := range gc.Geometries {
		if g == nil {
			continue
		}
		errs = append(errs, g.Validate().Errors()...)
	}
	return newValidationResult(errs)
}

// UnmarshalJSON resolves each member through the polymorphic geometry
// decoder.
func (gc *GeometryCollection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       string            `json:"type"`
		Geometries []json.RawMessage `json:"geometries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	gc.Type = raw.Type
	gc.Geometries = nil
	if raw.Geometries != nil {
		gc.Geometries = make([]Geometry, 0, len(raw.Geometries))
	}
	for i, member := range raw.Geometries {
		g, err := UnmarshalGeometry(member)
		if err != nil {
			return fmt.Errorf("geometries[%d]: %w", i, err)
		}
		gc.Geometries = append(gc.Geometries, g)
	}
	return nil
}

func (gc *GeometryCollection) String() string {
	return fmt.Sprintf("GeometryCollection{type=%q, geometries=%v}", gc.Type, gc.Geometries)
}
