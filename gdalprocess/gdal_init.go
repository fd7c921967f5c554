package gdalprocess

// #include "gdal.h"
// #include "gdal_frmts.h"
// #cgo pkg-config: gdal
import "C"

import (
	"os"
)

func InitGdal() {
	setDefaultEnv("GDAL_PAM_ENABLED", "NO")
	setDefaultEnv("GDAL_NETCDF_VERIFY_DIMS", "NO")
	setDefaultEnv("GDAL_DISABLE_READDIR_ON_OPEN", "EMPTY_DIR")

	registerGDALDrivers()
}

func setDefaultEnv(envVar string, defaultVal string) {
	if _, ok := os.LookupEnv(envVar); !ok {
		os.Setenv(envVar, defaultVal)
	}
}

func registerGDALDrivers() {
	// Work out which drivers are present in the GDAL shared
	// library, then re-register the ones we open most often ahead
	// of the rest (drivers are interrogated in a linear scan).
	var haveGTiff, haveNetCDF bool

	C.GDALAllRegister()
	for i := 0; i < int(C.GDALGetDriverCount()); i++ {
		driver := C.GDALGetDriver(C.int(i))
		switch C.GoString(C.GDALGetDriverShortName(driver)) {
		case "GTiff":
			haveGTiff = true
		case "netCDF":
			haveNetCDF = true
		}
	}

	for i := 0; i < int(C.GDALGetDriverCount()); i++ {
		C.GDALDeregisterDriver(C.GDALGetDriver(C.int(i)))
	}

	if haveGTiff {
		C.GDALRegister_GTiff()
	}
	if haveNetCDF {
		C.GDALRegister_netCDF()
	}

	C.GDALAllRegister()
}
