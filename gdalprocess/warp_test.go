package gdalprocess

import (
	"math"
	"path/filepath"
	"testing"
)

func TestReprojectIdentity(t *testing.T) {
	dir := t.TempDir()
	srcFile := filepath.Join(dir, "src.tif")
	dstFile := filepath.Join(dir, "dst.tif")

	grid := [][]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	geot := []float64{10.0, 0.01, 0, -5.0, 0, -0.01}

	if err := WriteGeoTIFF(grid, srcFile, geot, "EPSG:4326", DefaultNoData, DefaultCompression); err != nil {
		t.Fatalf("WriteGeoTIFF failed: %v", err)
	}

	if err := Reproject(srcFile, dstFile, "EPSG:4326"); err != nil {
		t.Fatalf("Reproject failed: %v", err)
	}

	info, err := ExtractRasterInfo(dstFile)
	if err != nil {
		t.Fatalf("ExtractRasterInfo failed: %v", err)
	}
	if info.XSize != 4 || info.YSize != 3 {
		t.Fatalf("identity reprojection changed dimensions: %v x %v", info.XSize, info.YSize)
	}
	if info.RasterCount != 1 {
		t.Errorf("identity reprojection changed band count: %v", info.RasterCount)
	}
	for i := range geot {
		if math.Abs(info.GeoTransform[i]-geot[i]) > 1e-9 {
			t.Errorf("geotransform mismatch at %d: %v", i, info.GeoTransform)
		}
	}
	if !info.HasNoData || info.NoData != DefaultNoData {
		t.Errorf("nodata not carried over: %v (set: %v)", info.NoData, info.HasNoData)
	}

	data, width, height, err := ReadBandFloat32(dstFile, 1)
	if err != nil {
		t.Fatalf("ReadBandFloat32 failed: %v", err)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if data[row*width+col] != grid[row][col] {
				t.Errorf("pixel (%d,%d): got %v, want %v", row, col, data[row*width+col], grid[row][col])
			}
		}
	}
}

func TestReprojectBandOrder(t *testing.T) {
	dir := t.TempDir()
	srcFile := filepath.Join(dir, "src.tif")
	dstFile := filepath.Join(dir, "dst.tif")

	width, height := 8, 6
	fills := []float32{100, 200, 300}
	bands := make([][]float32, len(fills))
	for i, fill := range fills {
		band := make([]float32, width*height)
		for j := range band {
			band[j] = fill
		}
		bands[i] = band
	}
	geot := []float64{10.0, 0.01, 0, -5.0, 0, -0.01}

	if err := writeBands(srcFile, bands, width, height, geot, "EPSG:4326", DefaultNoData, DefaultCompression); err != nil {
		t.Fatalf("writeBands failed: %v", err)
	}

	if err := Reproject(srcFile, dstFile, "EPSG:3857"); err != nil {
		t.Fatalf("Reproject failed: %v", err)
	}

	info, err := ExtractRasterInfo(dstFile)
	if err != nil {
		t.Fatalf("ExtractRasterInfo failed: %v", err)
	}
	if info.RasterCount != 3 {
		t.Fatalf("band count not preserved: %v", info.RasterCount)
	}

	for i, fill := range fills {
		data, w, h, err := ReadBandFloat32(dstFile, i+1)
		if err != nil {
			t.Fatalf("ReadBandFloat32 band %d failed: %v", i+1, err)
		}

		if data[(h/2)*w+w/2] != fill {
			t.Errorf("band %d: centre pixel is %v, want %v", i+1, data[(h/2)*w+w/2], fill)
		}
		// Edge pixels may fall outside the warped footprint and pick
		// up the nodata fill.
		for _, val := range data {
			if val != fill && val != DefaultNoData {
				t.Errorf("band %d: unexpected value %v", i+1, val)
				break
			}
		}
	}
}

func TestReprojectErrors(t *testing.T) {
	dir := t.TempDir()
	srcFile := filepath.Join(dir, "src.tif")
	grid := [][]float32{{1, 2}, {3, 4}}
	geot := []float64{10.0, 0.01, 0, -5.0, 0, -0.01}
	if err := WriteGeoTIFF(grid, srcFile, geot, "EPSG:4326", DefaultNoData, DefaultCompression); err != nil {
		t.Fatalf("WriteGeoTIFF failed: %v", err)
	}

	if err := Reproject(filepath.Join(dir, "missing.tif"), filepath.Join(dir, "out.tif"), "EPSG:4326"); err == nil {
		t.Errorf("expected error for missing source")
	}
	if err := Reproject(srcFile, filepath.Join(dir, "out.tif"), "NOT_A_CRS"); err == nil {
		t.Errorf("expected error for unresolvable CRS")
	}
	if err := Reproject(srcFile, "/no/such/dir/out.tif", "EPSG:4326"); err == nil {
		t.Errorf("expected error for unwritable destination")
	}
}
