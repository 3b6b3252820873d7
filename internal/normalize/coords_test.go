package normalize

import "testing"

func TestCoordinates(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"22.79, -82.50", "22.79, -82.50"},
		{"  22.79, -82.50  ", "22.79, -82.50"},
		{"-22.79,-82.50", "-22.79,-82.50"},
		{"22,-82", "22,-82"},
		{"https://maps.google.com/@22.796,-82.506,17z", "22.796, -82.506"},
		{"geo:?coordinate=22.79,-82.50", "22.79, -82.50"},
		{"Calle 84 esquina 23", ""},
		{"22.79", ""},
		{"", ""},
		// out-of-range pairs are accepted, validation is purely syntactic
		{"999.0, -999.0", "999.0, -999.0"},
	}
	for _, tt := range tests {
		if got := Coordinates(tt.input); got != tt.want {
			t.Errorf("Coordinates(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestCoordinatesIdempotentOnCleanPairs(t *testing.T) {
	clean := "22.79680, -82.50694"
	once := Coordinates(clean)
	if once != clean {
		t.Fatalf("clean pair changed: %q", once)
	}
	if twice := Coordinates(once); twice != once {
		t.Errorf("not idempotent: %q then %q", once, twice)
	}
}

func TestLatLng(t *testing.T) {
	lat, lng, ok := LatLng("22.79, -82.50")
	if !ok {
		t.Fatal("expected valid pair to parse")
	}
	if lat != 22.79 || lng != -82.50 {
		t.Errorf("got (%v, %v)", lat, lng)
	}

	for _, bad := range []string{"", "22.79", "a, b", "1,2,3"} {
		if _, _, ok := LatLng(bad); ok {
			t.Errorf("LatLng(%q) unexpectedly ok", bad)
		}
	}
}
