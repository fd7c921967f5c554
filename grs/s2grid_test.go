package grs

import (
	"testing"
)

func TestTileEPSG(t *testing.T) {
	tests := []struct {
		tile string
		epsg int
	}{
		{"T23KMQ", 32723},
		{"23KMQ", 32723},
		{"T31UDQ", 32631},
		{"t31udq", 32631},
		{"T01CAB", 32701},
		{"T60XWF", 32660},
	}
	for _, test := range tests {
		epsg, err := TileEPSG(test.tile)
		if err != nil {
			t.Errorf("TileEPSG(%q) failed: %v", test.tile, err)
			continue
		}
		if epsg != test.epsg {
			t.Errorf("TileEPSG(%q): got %d, want %d", test.tile, epsg, test.epsg)
		}
	}
}

func TestTileEPSGInvalid(t *testing.T) {
	for _, tile := range []string{"", "T23", "TXXKMQ", "T23IMQ", "T61KMQ", "T00KMQ", "23KMQXX"} {
		if _, err := TileEPSG(tile); err == nil {
			t.Errorf("expected error for tile %q", tile)
		}
	}
}
