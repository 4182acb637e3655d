package geojson

import "fmt"

// LineString is a sequence of at least two Positions.
type LineString struct {
	Type        string     `json:"type"`
	Coordinates []Position `json:"coordinates"`
}

// NewLineString builds a LineString with the canonical type tag and
// validates it.
func NewLineString(coordinates ...Position) (*LineString, error) {
	return validated(&LineString{Type: TypeLineString, Coordinates: coordinates})
}

func (l *LineString) GeoJSONType() string { return l.Type }
func (l *LineString) geometry()           {}

func (l *LineString) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(l.Type, TypeLineString) {
		errs = append(errs, typeError(l.Type, TypeLineString))
	}
	if len(l.Coordinates) == 0 {
		errs = append(errs, errorOf("coordinates", "coordinates should not be empty/blank", "coordinates.invalid.empty"))
	}
	if len(l.Coordinates) < 2 {
		errs = append(errs, errorOf("coordinates", "coordinates is not valid, minimum 2 positions required", "coordinates.invalid.min.length"))
	}
	for _, pos := range l.Coordinates {
		errs = append(errs, pos.Validate().Errors()...)
	}
	return newValidationResult(errs)
}

func (l *LineString) String() string {
	return fmt.Sprintf("LineString{type=%q, coordinates=%v}", l.Type, l.Coordinates)
}
