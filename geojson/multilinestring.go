package geojson

import "fmt"

// MultiLineString is a list of line strings, each with at least two
// Positions.
type MultiLineString struct {
	Type        string       `json:"type"`
	Coordinates [][]Position `json:"coordinates"`
}

// NewMultiLineString builds a MultiLineString with the canonical type tag
// and validates it.
func NewMultiLineString(lines ...[]Position) (*MultiLineString, error) {
	return validated(&MultiLineString{Type: TypeMultiLineString, Coordinates: lines})
}

func (m *MultiLineString) GeoJSONType() string { return m.Type }
func (m *MultiLineString) geometry()           {}

func (m *MultiLineString) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(m.Type, TypeMultiLineString) {
		errs = append(errs, typeError(m.Type, TypeMultiLineString))
	}
	if len(m.Coordinates) == 0 {
		errs = append(errs, errorOf("coordinates", "coordinates should not be empty/blank", "coordinates.invalid.empty"))
	}
	for _, line := range m.Coordinates {
		if len(line) < 2 {
			errs = append(errs, errorOf("coordinates", "coordinates is not valid, minimum 2 positions required", "coordinates.invalid.min.length"))
			break
		}
	}
	for _, line := range m.Coordinates {
		for _, pos := range line {
			errs = append(errs, pos.Validate().Errors()...)
		}
	}
	return newValidationResult(errs)
}

func (m *MultiLineString) String() string {
	return fmt.Sprintf("MultiLineString{type=%q, coordinates=%v}", m.Type, m.Coordinates)
}
