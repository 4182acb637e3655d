package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode failures are a separate channel from validation: malformed JSON, a
// missing or unknown "type" member, or a type-mismatched field shape abort
// decoding entirely and never produce a partial value.

// ErrMissingType reports a GeoJSON object without a "type" member.
var ErrMissingType = errors.New(`geojson: missing "type" member`)

// resolver maps a discriminator value to its concrete decoder. All three
// entry points (Unmarshal, UnmarshalGeometry, concrete UnmarshalJSON) go
// through the same concrete decoding, so they yield identical values.
var resolver = map[string]func(data []byte) (GeoJSON, error){
	TypePoint:              decodeAs[Point],
	TypeMultiPoint:         decodeAs[MultiPoint],
	TypeLineString:         decodeAs[LineString],
	TypeMultiLineString:    decodeAs[MultiLineString],
	TypePolygon:            decodeAs[Polygon],
	TypeMultiPolygon:       decodeAs[MultiPolygon],
	TypeGeometryCollection: decodeAs[GeometryCollection],
	TypeFeature:            decodeAs[Feature],
	TypeFeatureCollection:  decodeAs[FeatureCollection],
}

func decodeAs[T any, PT interface {
	*T
	GeoJSON
}](data []byte) (GeoJSON, error) {
	v := PT(new(T))
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Unmarshal decodes any GeoJSON object polymorphically via its "type"
// member. The discriminator stays on the decoded value, so re-encoding
// round-trips.
func Unmarshal(data []byte) (GeoJSON, error) {
	var envelope struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("geojson: decode envelope: %w", err)
	}
	if envelope.Type == nil || *envelope.Type == "" {
		return nil, ErrMissingType
	}
	decode, ok := resolver[*envelope.Type]
	if !ok {
		return nil, fmt.Errorf("geojson: unknown type %q", *envelope.Type)
	}
	return decode(data)
}

// UnmarshalGeometry decodes a GeoJSON object and requires it to be one of
// the seven geometry variants.
func UnmarshalGeometry(data []byte) (Geometry, error) {
	v, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	g, ok := v.(Geometry)
	if !ok {
		return nil, fmt.Errorf("geojson: type %q is not a geometry", v.GeoJSONType())
	}
	return g, nil
}

// Marshal encodes any GeoJSON value to its canonical wire form.
func Marshal(v GeoJSON) ([]byte, error) {
	return json.Marshal(v)
}
