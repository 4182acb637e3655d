package geojson

import (
	"encoding/json"
	"fmt"
)

// PolygonCoordinates is the ring structure of a Polygon: one exterior linear
// ring plus zero or more hole rings. On the wire it is a flat list of rings
// where ring 0 is the exterior.
type PolygonCoordinates struct {
	Exterior []Position
	Holes    [][]Position
}

// NewPolygonCoordinates builds the ring structure from a flat ring list and
// validates it eagerly. Supplying zero rings yields an empty exterior, which
// is a validation failure rather than a construction failure.
func NewPolygonCoordinates(rings ...[]Position) (*PolygonCoordinates, error) {
	return validated(polygonCoordinatesFromRings(rings))
}

func polygonCoordinatesFromRings(rings [][]Position) *PolygonCoordinates {
	pc := &PolygonCoordinates{}
	if len(rings) > 0 {
		pc.Exterior = rings[0]
		pc.Holes = rings[1:]
	}
	return pc
}

// Coordinates returns the flat ring view: exterior first, then holes.
func (pc *PolygonCoordinates) Coordinates() [][]Position {
	out := make([][]Position, 0, 1+len(pc.Holes))
	out = append(out, pc.Exterior)
	out = append(out, pc.Holes...)
	return out
}

// validateLinearRing applies the ring invariants: non-empty, at least four
// positions, closed (first equals last), plus per-position validation.
func validateLinearRing(ring []Position) []ValidationError {
	var errs []ValidationError
	if len(ring) == 0 {
		errs = append(errs, errorOf("coordinates", "Exterior linear ring should not be blank/empty.", "coordinates.exterior.ring.empty"))
	}
	if len(ring) < 4 {
		errs = append(errs, errorOf("coordinates",
			fmt.Sprintf("Ring '%v' must contain at least four positions.", ring),
			"coordinates.ring.length.invalid"))
	}
	if len(ring) > 0 && !ring[0].Equal(ring[len(ring)-1]) {
		errs = append(errs, errorOf("coordinates",
			fmt.Sprintf("Ring '%v', first and last position must be the same.", ring),
			"coordinates.ring.circle.invalid"))
	}
	for _, pos := range ring {
		errs = append(errs, pos.Validate().Errors()...)
	}
	return errs
}

// Validate checks each ring independently; a defect in one hole does not
// suppress checks on the exterior or other holes.
func (pc *PolygonCoordinates) Validate() ValidationResult {
	errs := validateLinearRing(pc.Exterior)
	for _, hole := range pc.Holes {
		errs = append(errs, validateLinearRing(hole)...)
	}
	return newValidationResult(errs)
}

// MarshalJSON encodes the flat ring list.
func (pc PolygonCoordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(pc.Coordinates())
}

// UnmarshalJSON decodes a flat ring list, treating ring 0 as the exterior.
func (pc *PolygonCoordinates) UnmarshalJSON(data []byte) error {
	var rings [][]Position
	if err := json.Unmarshal(data, &rings); err != nil {
		return err
	}
	*pc = *polygonCoordinatesFromRings(rings)
	return nil
}
