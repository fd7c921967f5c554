package gdalprocess

// #include <stdlib.h>
// #include <string.h>
// #include "gdal.h"
// #include "ogr_srs_api.h"
// #include "cpl_conv.h"
// #cgo pkg-config: gdal
//char *getProj4(char *projWKT)
//{
//	char *pszProj4;
//	char *result;
//	OGRSpatialReferenceH hSRS;
//
//	hSRS = OSRNewSpatialReference(projWKT);
//	if(OSRExportToProj4(hSRS, &pszProj4) != OGRERR_NONE) {
//		OSRDestroySpatialReference(hSRS);
//		return strdup("");
//	}
//	result = strdup(pszProj4);
//
//	OSRDestroySpatialReference(hSRS);
//	CPLFree(pszProj4);
//
//	return result;
//}
import "C"

import (
	"fmt"
	"unsafe"
)

var GDALTypes = map[C.GDALDataType]string{0: "Unkown", 1: "Byte", 2: "UInt16", 3: "Int16",
	4: "UInt32", 5: "Int32", 6: "Float32", 7: "Float64",
	8: "CInt16", 9: "CInt32", 10: "CFloat32", 11: "CFloat64",
	12: "TypeCount"}

type RasterInfo struct {
	FileName     string    `json:"filename"`
	Driver       string    `json:"file_type"`
	Type         string    `json:"array_type"`
	RasterCount  int32     `json:"raster_count"`
	XSize        int32     `json:"x_size"`
	YSize        int32     `json:"y_size"`
	GeoTransform []float64 `json:"geotransform"`
	Polygon      string    `json:"polygon"`
	ProjWKT      string    `json:"proj_wkt"`
	Proj4        string    `json:"proj4"`
	NoData       float64   `json:"nodata"`
	HasNoData    bool      `json:"has_nodata"`
}

// ExtractRasterInfo opens the dataset at path and reports its geospatial
// layout: driver, pixel type, band count, dimensions, geotransform,
// projection and no-data, plus a POLYGON WKT of the full extent.
func ExtractRasterInfo(path string) (*RasterInfo, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	hDataset := C.GDALOpen(cPath, C.GA_ReadOnly)
	if hDataset == nil {
		err := C.CPLGetLastErrorMsg()
		return nil, fmt.Errorf("GDAL could not open dataset %s: %v", path, C.GoString(err))
	}
	defer C.GDALClose(hDataset)

	hDriver := C.GDALGetDatasetDriver(hDataset)
	shortName := C.GoString(C.GDALGetDriverShortName(hDriver))

	hBand := C.GDALGetRasterBand(hDataset, 1)
	if hBand == nil {
		return nil, fmt.Errorf("dataset %s has no raster bands", path)
	}

	var hasNoData C.int
	noData := float64(C.GDALGetRasterNoDataValue(hBand, &hasNoData))

	dArr := [6]C.double{}
	C.GDALGetGeoTransform(hDataset, &dArr[0])
	geot := make([]float64, 6)
	for i := range dArr {
		geot[i] = float64(dArr[i])
	}

	xSize := int(C.GDALGetRasterXSize(hDataset))
	ySize := int(C.GDALGetRasterYSize(hDataset))

	projWKT := C.GoString(C.GDALGetProjectionRef(hDataset))

	cProjWKT := C.CString(projWKT)
	cProj4 := C.getProj4(cProjWKT)
	C.free(unsafe.Pointer(cProjWKT))
	proj4 := C.GoString(cProj4)
	C.free(unsafe.Pointer(cProj4))

	return &RasterInfo{
		FileName:     path,
		Driver:       shortName,
		Type:         GDALTypes[C.GDALGetRasterDataType(hBand)],
		RasterCount:  int32(C.GDALGetRasterCount(hDataset)),
		XSize:        int32(xSize),
		YSize:        int32(ySize),
		GeoTransform: geot,
		Polygon:      getGeometryWKT(geot, xSize, ySize),
		ProjWKT:      projWKT,
		Proj4:        proj4,
		NoData:       noData,
		HasNoData:    hasNoData != 0,
	}, nil
}

// ReadBandFloat32 reads a whole band back as Float32 samples in
// row-major order. Bands are numbered from 1, as in GDAL.
func ReadBandFloat32(path string, band int) ([]float32, int, int, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	hDataset := C.GDALOpen(cPath, C.GA_ReadOnly)
	if hDataset == nil {
		err := C.CPLGetLastErrorMsg()
		return nil, 0, 0, fmt.Errorf("GDAL could not open dataset %s: %v", path, C.GoString(err))
	}
	defer C.GDALClose(hDataset)

	if band < 1 || band > int(C.GDALGetRasterCount(hDataset)) {
		return nil, 0, 0, fmt.Errorf("dataset %s has no band %d", path, band)
	}
	hBand := C.GDALGetRasterBand(hDataset, C.int(band))

	width := int(C.GDALGetRasterBandXSize(hBand))
	height := int(C.GDALGetRasterBandYSize(hBand))

	data := make([]float32, width*height)
	gerr := C.GDALRasterIO(hBand, C.GF_Read, 0, 0, C.int(width), C.int(height),
		unsafe.Pointer(&data[0]), C.int(width), C.int(height), C.GDT_Float32, 0, 0)
	if gerr != C.CE_None {
		return nil, 0, 0, fmt.Errorf("failed to read band %d of %s", band, path)
	}

	return data, width, height, nil
}

func getGeometryWKT(geot []float64, xSize, ySize int) string {
	var ulX, ulY, lrX, lrY C.double
	C.GDALApplyGeoTransform((*C.double)(unsafe.Pointer(&geot[0])), 0, 0, &ulX, &ulY)
	C.GDALApplyGeoTransform((*C.double)(unsafe.Pointer(&geot[0])), C.double(xSize), C.double(ySize), &lrX, &lrY)
	return fmt.Sprintf("POLYGON ((%f %f,%f %f,%f %f,%f %f,%f %f))", ulX, ulY, ulX, lrY, lrX, lrY, lrX, ulY, ulX, ulY)
}
