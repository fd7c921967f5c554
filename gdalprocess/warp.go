package gdalprocess

// #include "gdal.h"
// #include "gdalwarper.h"
// #include "gdal_alg.h"
// #include "ogr_srs_api.h"
// #include "cpl_conv.h"
// #cgo pkg-config: gdal
// int
// warp_band(GDALDatasetH hSrcDS, GDALDatasetH hDstDS, int band)
// {
//	int err;
//	GDALWarpOptions *psWOptions;
//
//	psWOptions = GDALCreateWarpOptions();
//	psWOptions->nBandCount = 1;
//	psWOptions->panSrcBands = (int *) CPLMalloc(sizeof(int) * 1);
//	psWOptions->panSrcBands[0] = band;
//	psWOptions->panDstBands = (int *) CPLMalloc(sizeof(int) * 1);
//	psWOptions->panDstBands[0] = band;
//
//	err = GDALReprojectImage(hSrcDS, GDALGetProjectionRef(hSrcDS), hDstDS, GDALGetProjectionRef(hDstDS), GRA_NearestNeighbour, 0.0, 0.0, NULL, NULL, psWOptions);
//	GDALDestroyWarpOptions(psWOptions);
//
//	return err;
// }
import "C"

import (
	"fmt"
	"log"
	"unsafe"
)

// DefaultTargetCRS is the reprojection target when none is configured.
const DefaultTargetCRS = "EPSG:4326"

// Reproject warps the raster at srcPath into targetCRS and writes the
// result to dstPath with the source's driver, band count and pixel
// type. Bands are warped one at a time in ascending order; band i of
// the source always lands in band i of the destination, as downstream
// tooling indexes bands positionally. Resampling is nearest neighbour
// only: GRS products carry quantized physical quantities that
// interpolation would corrupt.
func Reproject(srcPath, dstPath, targetCRS string) error {
	srcPathC := C.CString(srcPath)
	defer C.free(unsafe.Pointer(srcPathC))

	hSrcDS := C.GDALOpenEx(srcPathC, C.GDAL_OF_RASTER|C.GDAL_OF_READONLY|C.GDAL_OF_VERBOSE_ERROR, nil, nil, nil)
	if hSrcDS == nil {
		return fmt.Errorf("failed to open source dataset: %v", srcPath)
	}
	defer C.GDALClose(hSrcDS)

	if C.GoString(C.GDALGetProjectionRef(hSrcDS)) == "" {
		return fmt.Errorf("source dataset %v has no projection", srcPath)
	}

	dstWKT, err := resolveCRS(targetCRS)
	if err != nil {
		return err
	}
	defer C.CPLFree(unsafe.Pointer(dstWKT))

	hTransformArg := C.GDALCreateGenImgProjTransformer(hSrcDS, nil, nil, dstWKT, C.int(0), C.double(0), C.int(0))
	if hTransformArg == nil {
		return fmt.Errorf("GDALCreateGenImgProjTransformer() failed for %v -> %v", srcPath, targetCRS)
	}

	psInfo := (*C.GDALTransformerInfo)(hTransformArg)

	var dstGeot [6]C.double
	var nPixels, nLines C.int
	gerr := C.GDALSuggestedWarpOutput(hSrcDS, psInfo.pfnTransform, hTransformArg, &dstGeot[0], &nPixels, &nLines)
	C.GDALDestroyGenImgProjTransformer(hTransformArg)
	if gerr != C.CE_None {
		return fmt.Errorf("GDALSuggestedWarpOutput() failed for %v -> %v", srcPath, targetCRS)
	}

	nBands := int(C.GDALGetRasterCount(hSrcDS))
	if nBands < 1 {
		return fmt.Errorf("source dataset %v has no raster bands", srcPath)
	}
	dType := C.GDALGetRasterDataType(C.GDALGetRasterBand(hSrcDS, 1))

	hDriver := C.GDALGetDatasetDriver(hSrcDS)

	dstPathC := C.CString(dstPath)
	defer C.free(unsafe.Pointer(dstPathC))

	hDstDS := C.GDALCreate(hDriver, dstPathC, nPixels, nLines, C.int(nBands), dType, nil)
	if hDstDS == nil {
		return fmt.Errorf("failed to create destination dataset: %v", dstPath)
	}

	C.GDALSetProjection(hDstDS, dstWKT)
	C.GDALSetGeoTransform(hDstDS, &dstGeot[0])

	for i := 1; i <= nBands; i++ {
		var hasNoData C.int
		noData := C.GDALGetRasterNoDataValue(C.GDALGetRasterBand(hSrcDS, C.int(i)), &hasNoData)
		if hasNoData != 0 {
			C.GDALSetRasterNoDataValue(C.GDALGetRasterBand(hDstDS, C.int(i)), noData)
		}
	}

	for i := 1; i <= nBands; i++ {
		if cErr := C.warp_band(hSrcDS, hDstDS, C.int(i)); cErr != C.CE_None {
			C.GDALClose(hDstDS)
			return fmt.Errorf("failed to warp band %d of %v", i, srcPath)
		}
	}

	C.GDALClose(hDstDS)
	log.Printf("Done: %s", dstPath)

	return nil
}
