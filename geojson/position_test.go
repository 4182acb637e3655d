package geojson

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestPosition_Validate_RangeInvariant(t *testing.T) {
	cases := []struct {
		name    string
		pos     Position
		wantKey string
	}{
		{"valid 2d", Position{60.5, 25.1}, ""},
		{"valid 3d", Position{60.5, 25.1, 123.0}, ""},
		{"valid boundary lon", Position{180, 0}, ""},
		{"valid boundary lat", Position{0, -90}, ""},
		{"too few elements", Position{60.5}, "coordinates.length.invalid"},
		{"too many elements", Position{1, 2, 3, 4}, "coordinates.length.invalid"},
		{"empty", Position{}, "coordinates.length.invalid"},
		{"nil", nil, "coordinates.length.invalid"},
		{"longitude too big", Position{200, 10}, "coordinates.longitude.invalid"},
		{"longitude too small", Position{-180.01, 10}, "coordinates.longitude.invalid"},
		{"latitude too big", Position{10, 90.5}, "coordinates.latitude.invalid"},
		{"latitude too small", Position{10, -91}, "coordinates.latitude.invalid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.pos.Validate()
			if tc.wantKey == "" {
				if result.HasErrors() {
					t.Fatalf("expected valid, got %v", result.Errors())
				}
				return
			}
			if !result.HasKey(tc.wantKey) {
				t.Fatalf("missing key %q, got %v", tc.wantKey, result.Errors())
			}
		})
	}
}

// The arity/longitude/latitude checks short-circuit: exactly one error per
// invalid position, first applicable rule wins.
func TestPosition_Validate_FirstApplicableRuleWins(t *testing.T) {
	pos := Position{200, 95} // both ranges bad, longitude checked first
	errs := pos.Validate().Errors()
	if len(errs) != 1 {
		t.Fatalf("want exactly one error, got %v", errs)
	}
	if errs[0].Key != "coordinates.longitude.invalid" {
		t.Fatalf("key=%q want coordinates.longitude.invalid", errs[0].Key)
	}

	pos = Position{200} // bad arity hides range checks
	errs = pos.Validate().Errors()
	if len(errs) != 1 || errs[0].Key != "coordinates.length.invalid" {
		t.Fatalf("want single length error, got %v", errs)
	}
}

func TestNewPosition_EagerValidation(t *testing.T) {
	p, err := NewPosition(60.5, 25.1)
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	if p.Lon() != 60.5 || p.Lat() != 25.1 {
		t.Fatalf("accessors: lon=%v lat=%v", p.Lon(), p.Lat())
	}
	if !math.IsNaN(p.Alt()) {
		t.Fatalf("absent altitude should read as NaN, got %v", p.Alt())
	}

	_, err = NewPosition(200, 10)
	if err == nil {
		t.Fatal("expected validation failure for longitude 200")
	}
	var vErr *ValidationFailedError
	if !errors.As(err, &vErr) {
		t.Fatalf("want *ValidationFailedError, got %T", err)
	}
	if !vErr.Result.HasKey("coordinates.longitude.invalid") {
		t.Fatalf("missing longitude key in %v", vErr.Result.Errors())
	}
}

func TestPosition_Validate_Idempotent(t *testing.T) {
	pos := Position{200, 95}
	first := pos.Validate().Errors()
	second := pos.Validate().Errors()
	if len(first) != len(second) {
		t.Fatalf("validate not idempotent: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("validate not idempotent: %v vs %v", first, second)
		}
	}
}

func TestPosition_JSONRoundTrip(t *testing.T) {
	for _, pos := range []Position{{60.5, 25.1}, {60.5, 25.1, 40.0}} {
		data, err := json.Marshal(pos)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back Position
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !pos.Equal(back) {
			t.Fatalf("round trip changed value: %v -> %s -> %v", pos, data, back)
		}
	}
}

func TestPosition_Equal(t *testing.T) {
	if !(Position{1, 2}).Equal(Position{1, 2}) {
		t.Fatal("equal positions reported unequal")
	}
	if (Position{1, 2}).Equal(Position{1, 2, 3}) {
		t.Fatal("different arity reported equal")
	}
	if (Position{1, 2}).Equal(Position{2, 1}) {
		t.Fatal("different values reported equal")
	}
}
