package geojson

import (
	"encoding/json"
	"reflect"
	"testing"
)

func closedRing() []Position {
	return []Position{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
}

func TestPolygonCoordinates_ValidClosedRing(t *testing.T) {
	pc, err := NewPolygonCoordinates(closedRing())
	if err != nil {
		t.Fatalf("NewPolygonCoordinates: %v", err)
	}
	if !IsValid(pc) {
		t.Fatalf("expected valid, got %v", pc.Validate().Errors())
	}
}

func TestPolygonCoordinates_OpenRing(t *testing.T) {
	open := []Position{{0, 0}, {0, 1}, {1, 1}, {1, 0}} // last != first
	pc := polygonCoordinatesFromRings([][]Position{open})
	result := pc.Validate()
	if !result.HasKey("coordinates.ring.circle.invalid") {
		t.Fatalf("missing ring closure key, got %v", result.Errors())
	}
}

func TestPolygonCoordinates_ShortRing(t *testing.T) {
	short := []Position{{0, 0}, {1, 1}, {0, 0}}
	pc := polygonCoordinatesFromRings([][]Position{short})
	result := pc.Validate()
	if !result.HasKey("coordinates.ring.length.invalid") {
		t.Fatalf("missing ring length key, got %v", result.Errors())
	}
}

func TestPolygonCoordinates_ZeroRingsIsEmptyExterior(t *testing.T) {
	pc := polygonCoordinatesFromRings(nil)
	result := pc.Validate()
	if !result.HasKey("coordinates.exterior.ring.empty") {
		t.Fatalf("missing empty exterior key, got %v", result.Errors())
	}
	// empty ring also fails the minimum length rule
	if !result.HasKey("coordinates.ring.length.invalid") {
		t.Fatalf("missing ring length key, got %v", result.Errors())
	}
}

// A defect in one hole must not suppress checks on other rings.
func TestPolygonCoordinates_RingsValidatedIndependently(t *testing.T) {
	badHole := []Position{{0, 0}, {0, 1}, {1, 1}, {1, 0}} // open
	badPositionHole := []Position{{0, 0}, {200, 1}, {1, 1}, {0, 0}}
	pc := &PolygonCoordinates{
		Exterior: closedRing(),
		Holes:    [][]Position{badHole, badPositionHole},
	}
	result := pc.Validate()
	if !result.HasKey("coordinates.ring.circle.invalid") {
		t.Fatalf("open hole not reported: %v", result.Errors())
	}
	if !result.HasKey("coordinates.longitude.invalid") {
		t.Fatalf("bad position in second hole not reported: %v", result.Errors())
	}
}

func TestPolygonCoordinates_CoordinatesView(t *testing.T) {
	hole := []Position{{0.2, 0.2}, {0.2, 0.4}, {0.4, 0.4}, {0.2, 0.2}}
	pc, err := NewPolygonCoordinates(closedRing(), hole)
	if err != nil {
		t.Fatalf("NewPolygonCoordinates: %v", err)
	}
	view := pc.Coordinates()
	if len(view) != 2 {
		t.Fatalf("view len=%d want 2", len(view))
	}
	if !view[0][0].Equal(Position{0, 0}) || !view[1][0].Equal(Position{0.2, 0.2}) {
		t.Fatalf("unexpected view: %v", view)
	}
}

func TestPolygonCoordinates_JSONRoundTrip(t *testing.T) {
	hole := []Position{{0.2, 0.2}, {0.2, 0.4}, {0.4, 0.4}, {0.2, 0.2}}
	pc, err := NewPolygonCoordinates(closedRing(), hole)
	if err != nil {
		t.Fatalf("NewPolygonCoordinates: %v", err)
	}
	data, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back PolygonCoordinates
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(*pc, back) {
		t.Fatalf("round trip changed value:\n in=%v\nout=%v", pc, &back)
	}
}
