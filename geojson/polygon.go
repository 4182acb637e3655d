package geojson

import "fmt"

// Polygon wraps a PolygonCoordinates ring structure with its discriminator.
type Polygon struct {
	Type        string              `json:"type"`
	Coordinates *PolygonCoordinates `json:"coordinates"`
}

// NewPolygon builds a Polygon from an exterior ring and optional holes and
// validates it.
func NewPolygon(exterior []Position, holes ...[]Position) (*Polygon, error) {
	return validated(&Polygon{
		Type:        TypePolygon,
		Coordinates: &PolygonCoordinates{Exterior: exterior, Holes: holes},
	})
}

// NewPolygonFromRings builds a Polygon from a flat ring list (ring 0 is the
// exterior) and validates it.
func NewPolygonFromRings(rings ...[]Position) (*Polygon, error) {
	return validated(&Polygon{Type: TypePolygon, Coordinates: polygonCoordinatesFromRings(rings)})
}

func (p *Polygon) GeoJSONType() string { return p.Type }
func (p *Polygon) geometry()           {}

func (p *Polygon) Validate() ValidationResult {
	var errs []ValidationError
	if !typeTagValid(p.Type, TypePolygon) {
		errs = append(errs, typeError(p.Type, TypePolygon))
	}
	if p.Coordinates == nil {
		errs = append(errs, errorOf("coordinates", "coordinates should not be empty/blank", "coordinates.invalid.empty"))
		return newValidationResult(errs)
	}
	if len(p.Coordinates.Exterior) == 0 {
		errs = append(errs, errorOf("coordinates", "coordinates is not valid, at least one position required", "coordinates.invalid.min.length"))
	}
	errs = append(errs, p.Coordinates.Validate().Errors()...)
	return newValidationResult(errs)
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon{type=%q, coordinates=%v}", p.Type, p.Coordinates)
}
