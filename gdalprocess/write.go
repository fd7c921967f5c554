package gdalprocess

// #include "gdal.h"
// #include "ogr_srs_api.h"
// #include "cpl_conv.h"
// #cgo pkg-config: gdal
import "C"

import (
	"fmt"
	"unsafe"
)

const (
	// DefaultNoData marks missing samples in generated products.
	DefaultNoData = -1

	// DefaultCompression is the GTiff creation compression. PACKBITS is
	// lossless and cheap to decode, which matters for downstream tools
	// that stream whole scenes.
	DefaultCompression = "PACKBITS"
)

// WriteGeoTIFF creates a single band Float32 GeoTIFF at filePath from a
// rectangular grid of samples. geot is the 6-coefficient affine
// geotransform. projection is anything GDAL resolves as a spatial
// reference: WKT, EPSG:nnnn or a proj4 string.
func WriteGeoTIFF(grid [][]float32, filePath string, geot []float64, projection string, noData float64, compression string) error {
	rows := len(grid)
	if rows == 0 {
		return fmt.Errorf("grid is not 2-dimensional: no rows")
	}
	cols := len(grid[0])
	if cols == 0 {
		return fmt.Errorf("grid is not 2-dimensional: empty rows")
	}
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("grid is not 2-dimensional: row %d has %d samples, expected %d", i, len(row), cols)
		}
	}

	if len(geot) != 6 {
		return fmt.Errorf("geotransform must have 6 coefficients, got %d", len(geot))
	}

	data := make([]float32, rows*cols)
	for i, row := range grid {
		copy(data[i*cols:], row)
	}

	return writeBands(filePath, [][]float32{data}, cols, rows, geot, projection, noData, compression)
}

// writeBands is the create/write kernel shared by WriteGeoTIFF and the
// multi-band test fixtures. Each entry of bands holds width*height
// samples in row-major order.
func writeBands(filePath string, bands [][]float32, width, height int, geot []float64, projection string, noData float64, compression string) error {
	for i, band := range bands {
		if len(band) != width*height {
			return fmt.Errorf("band %d has %d samples, expected %d", i+1, len(band), width*height)
		}
	}

	projWKT, err := resolveCRS(projection)
	if err != nil {
		return err
	}
	defer C.CPLFree(unsafe.Pointer(projWKT))

	driverNameC := C.CString("GTiff")
	defer C.free(unsafe.Pointer(driverNameC))
	hDriver := C.GDALGetDriverByName(driverNameC)
	if hDriver == nil {
		return fmt.Errorf("GTiff driver is not available")
	}

	var driverOptions []*C.char
	driverOptions = append(driverOptions, C.CString(fmt.Sprintf("COMPRESS=%s", compression)))
	for _, opt := range driverOptions {
		defer C.free(unsafe.Pointer(opt))
	}
	// NULL pointer is used to terminate the option array by gdal
	driverOptions = append(driverOptions, nil)

	filePathC := C.CString(filePath)
	defer C.free(unsafe.Pointer(filePathC))

	hDstDS := C.GDALCreate(hDriver, filePathC, C.int(width), C.int(height), C.int(len(bands)), C.GDT_Float32, &driverOptions[0])
	if hDstDS == nil {
		return fmt.Errorf("failed to create raster %v", filePath)
	}
	defer C.GDALClose(hDstDS)

	for i, band := range bands {
		hBand := C.GDALGetRasterBand(hDstDS, C.int(i+1))
		C.GDALSetRasterNoDataValue(hBand, C.double(noData))

		gerr := C.GDALRasterIO(hBand, C.GF_Write, 0, 0, C.int(width), C.int(height),
			unsafe.Pointer(&band[0]), C.int(width), C.int(height), C.GDT_Float32, 0, 0)
		if gerr != C.CE_None {
			return fmt.Errorf("failed to write band %d of %v", i+1, filePath)
		}
	}

	C.GDALSetGeoTransform(hDstDS, (*C.double)(&geot[0]))
	C.GDALSetProjection(hDstDS, projWKT)

	return nil
}

// resolveCRS turns a user CRS descriptor into WKT. The returned string
// is owned by the caller and must be released with CPLFree.
func resolveCRS(crs string) (*C.char, error) {
	crsC := C.CString(crs)
	defer C.free(unsafe.Pointer(crsC))

	hSRS := C.OSRNewSpatialReference(nil)
	defer C.OSRDestroySpatialReference(hSRS)

	if C.OSRSetFromUserInput(hSRS, crsC) != C.OGRERR_NONE {
		return nil, fmt.Errorf("failed to resolve CRS: %v", crs)
	}

	var projWKT *C.char
	if C.OSRExportToWkt(hSRS, &projWKT) != C.OGRERR_NONE {
		return nil, fmt.Errorf("failed to export CRS %v as WKT", crs)
	}
	return projWKT, nil
}
