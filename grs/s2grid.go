package grs

import (
	"fmt"
	"strconv"
	"strings"
)

// MGRS latitude bands, south to north. Bands C-M sit in the southern
// hemisphere, N-X in the northern. I and O are skipped.
const latitudeBands = "CDEFGHJKLMNPQRSTUVWX"

// TileEPSG returns the EPSG code of the UTM projection a Sentinel-2
// tile is gridded in. The tile may carry its leading "T", e.g. both
// "T23KMQ" and "23KMQ" resolve to EPSG:32723.
func TileEPSG(tile string) (int, error) {
	id := strings.TrimPrefix(strings.ToUpper(tile), "T")
	if len(id) != 5 {
		return 0, fmt.Errorf("invalid Sentinel-2 tile ID: %s", tile)
	}

	zone, err := strconv.Atoi(id[:2])
	if err != nil || zone < 1 || zone > 60 {
		return 0, fmt.Errorf("invalid UTM zone in tile ID: %s", tile)
	}

	band := id[2]
	idx := strings.IndexByte(latitudeBands, band)
	if idx < 0 {
		return 0, fmt.Errorf("invalid latitude band in tile ID: %s", tile)
	}

	if idx < strings.IndexByte(latitudeBands, 'N') {
		return 32700 + zone, nil
	}
	return 32600 + zone, nil
}
