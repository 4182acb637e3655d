package geojson

import "fmt"

// MultiPolygon is a list of at least one polygon ring structure.
type MultiPolygon struct {
	Type        string               `json:"type"`
	Coordinates []PolygonCoordinates `json:"coordinates"`
}

// NewMultiPolygon builds a MultiPolygon with the canonical type tag and
// validates it.
func NewMultiPolygon(coordinates ...PolygonCoordinates) (*MultiPolygon, error) {
	return validated(&MultiPolygon{Type: TypeMultiPolygon, Coordinates: coordinates})
}

func (m *MultiPolygon) GeoJSONType() string { return m.Type }
func (m *MultiPolygon) geometry()           {}

func (m *MultiPolygon) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(m.Type, TypeMultiPolygon) {
		errs = append(errs, typeError(m.Type, TypeMultiPolygon))
	}
	if len(m.Coordinates) < 1 {
		errs = append(errs, errorOf("coordinates", "coordinates is not valid, at least one position required", "coordinates.invalid.min.length"))
	}
	for i := range m.Coordinates {
		errs = append(errs, m.Coordinates[i].Validate().Errors()...)
	}
	return newValidationResult(errs)
}

func (m *MultiPolygon) String() string {
	return fmt.Sprintf("MultiPolygon{type=%q, coordinates=%v}", m.Type, m.Coordinates)
}
