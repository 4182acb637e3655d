package geojson

import "fmt"

// MultiPoint is a list of at least two Positions.
type MultiPoint struct {
	Type        string     `json:"type"`
	Coordinates []Position `json:"coordinates"`
}

// NewMultiPoint builds a MultiPoint with the canonical type tag and
// validates it.
func NewMultiPoint(coordinates ...Position) (*MultiPoint, error) {
	return validated(&MultiPoint{Type: TypeMultiPoint, Coordinates: coordinates})
}

func (m *MultiPoint) GeoJSONType() string { return m.Type }
func (m *MultiPoint) geometry()           {}

func (m *MultiPoint) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(m.Type, TypeMultiPoint) {
		errs = append(errs, typeError(m.Type, TypeMultiPoint))
	}
	if len(m.Coordinates) == 0 {
		errs = append(errs, errorOf("coordinates", "coordinates should not be empty/blank", "coordinates.invalid.empty"))
	}
	if len(m.Coordinates) < 2 {
		errs = append(errs, errorOf("coordinates", "coordinates is not valid, minimum 2 positions required", "coordinates.invalid.min.length"))
	}
	for _, pos := range m.Coordinates {
		errs = append(errs, pos.Validate().Errors()...)
	}
	return newValidationResult(errs)
}

func (m *MultiPoint) String() string {
	return fmt.Sprintf("MultiPoint{type=%q, coordinates=%v}", m.Type, m.Coordinates)
}
