package geojson

import "math"

// Position is a single coordinate: [longitude, latitude] or
// [longitude, latitude, altitude]. It encodes as a bare JSON array of
// numbers. Construct directly for the lazy path or via NewPosition for
// eager validation.
type Position []float64

// NewPosition builds a Position and validates it, failing with a
// *ValidationFailedError on bad arity or out-of-range longitude/latitude.
func NewPosition(coordinates ...float64) (Position, error) {
	return validated(Position(coordinates))
}

// Lon returns the longitude, or NaN when absent.
func (p Position) Lon() float64 {
	if len(p) > 0 {
		return p[0]
	}
	return math.NaN()
}

// Lat returns the latitude, or NaN when absent.
func (p Position) Lat() float64 {
	if len(p) > 1 {
		return p[1]
	}
	return math.NaN()
}

// Alt returns the altitude, or NaN when the position has no third element.
func (p Position) Alt() float64 {
	if len(p) > 2 {
		return p[2]
	}
	return math.NaN()
}

// Equal reports element-wise value equality.
func (p Position) Equal(other Position) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate checks arity first; range checks are meaningless on malformed
// arity, so the chain reports only the first applicable failure.
func (p Position) Validate() ValidationResult {
	var errs []ValidationError
	if len(p) != 2 && len(p) != 3 {
		errs = append(errs, errorOf("coordinates", "coordinates length is not valid", "coordinates.length.invalid"))
	} else if p.Lon() < -180 || p.Lon() > 180 {
		errs = append(errs, errorOf("coordinates", "longitude is not valid", "coordinates.longitude.invalid"))
	} else if p.Lat() < -90 || p.Lat() > 90 {
		errs = append(errs, errorOf("coordinates", "latitude is not valid", "coordinates.latitude.invalid"))
	}
	return newValidationResult(errs)
}
