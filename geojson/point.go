package geojson

import "fmt"

// Point is a single Position with its discriminator.
type Point struct {
	Type        string   `json:"type"`
	Coordinates Position `json:"coordinates"`
}

// NewPoint builds a Point with the canonical type tag and validates it.
func NewPoint(coordinates Position) (*Point, error) {
	return validated(&Point{Type: TypePoint, Coordinates: coordinates})
}

// NewPointFrom builds a Point from a longitude/latitude pair.
func NewPointFrom(lon, lat float64) (*Point, error) {
	return NewPoint(Position{lon, lat})
}

func (p *Point) GeoJSONType() string { return p.Type }
func (p *Point) geometry()           {}

func (p *Point) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(p.Type, TypePoint) {
		errs = append(errs, typeError(p.Type, TypePoint))
	}
	if p.Coordinates == nil {
		errs = append(errs, errorOf("coordinates", "coordinates should not be empty/blank", "coordinates.invalid.empty"))
	} else {
		errs = append(errs, p.Coordinates.Validate().Errors()...)
	}
	return newValidationResult(errs)
}

func (p *Point) String() string {
	return fmt.Sprintf("Point{type=%q, coordinates=%v}", p.Type, p.Coordinates)
}
