// Package geojson is a typed in-memory model and validator for the GeoJSON
// format (RFC 7946). Values decode lazily and validate explicitly: decoding
// never validates content, and Validate never fails on partially built
// values. The New* constructors are the eager path, returning a
// *ValidationFailedError when the built value violates a GeoJSON rule.
package geojson

// Canonical values of the "type" member, as defined by RFC 7946.
const (
	TypePoint              = "Point"
	TypeMultiPoint         = "MultiPoint"
	TypeLineString         = "LineString"
	TypeMultiLineString    = "MultiLineString"
	TypePolygon            = "Polygon"
	TypeMultiPolygon       = "MultiPolygon"
	TypeGeometryCollection = "GeometryCollection"
	TypeFeature            = "Feature"
	TypeFeatureCollection  = "FeatureCollection"
)

// Validatable is implemented by every GeoJSON value. Validate is pure and
// idempotent; it reports content problems, it never panics on zero values.
type Validatable interface {
	Validate() ValidationResult
}

// GeoJSON is the closed top-level union: a Geometry, a *Feature or a
// *FeatureCollection. The discriminator stays visible on the decoded value
// so re-encoding is lossless.
type GeoJSON interface {
	Validatable
	// GeoJSONType returns the value of the "type" member as constructed or
	// decoded, which may differ from the canonical name on invalid input.
	GeoJSONType() string
}

// Geometry is the closed set of the seven geometry variants.
type Geometry interface {
	GeoJSON
	geometry()
}

// IsValid reports whether v has no validation errors.
func IsValid(v Validatable) bool {
	return !v.Validate().HasErrors()
}

// HasErrors reports whether v has at least one validation error.
func HasErrors(v Validatable) bool {
	return v.Validate().HasErrors()
}

// validated is the shared eager-construction gate used by the New*
// constructors: build first, then validate, then fail or return.
func validated[T Validatable](v T) (T, error) {
	if result := v.Validate(); result.HasErrors() {
		var zero T
		return zero, &ValidationFailedError{Result: result}
	}
	return v, nil
}
