// Package grs decodes the naming convention of GRS atmospherically
// corrected Sentinel-2 products.
package grs

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// A GRS file name carries nine underscore-delimited fields:
//
//	S2A_MSIL1C_20210521T131241_N0300_R138_T23KMQ_20210521T163353_cc020_v15.nc
//
//	S2A             (MMM)       mission ID (S2A/S2B)
//	MSIL1C          (MSIXXX)    product processing level
//	20210521T131241 (YYYYMMDDTHHMMSS) sensing start time
//	N0300           (Nxxyy)     processing baseline number
//	R138                        relative orbit number (R001 - R143)
//	T23KMQ          (Txxxxx)    tile number
//	20210521T163353             product discriminator
//	cc020                       GRS cloud cover estimation (0-100%)
//	v15                         GRS algorithm baseline version
//
// Sentinel-2 MSI naming convention:
// https://sentinels.copernicus.eu/web/sentinel/user-guides/sentinel-2-msi/naming-convention
type Metadata struct {
	InputFile            string    `json:"input_file"`
	Basename             string    `json:"basename"`
	Mission              string    `json:"mission"`
	ProdLvl              string    `json:"prod_lvl"`
	StrDate              string    `json:"str_date"`
	Date                 time.Time `json:"date"`
	Year                 string    `json:"year"`
	Month                string    `json:"month"`
	Day                  string    `json:"day"`
	BaselineAlgoVersion  string    `json:"baseline_algo_version"`
	RelativeOrbit        string    `json:"relative_orbit"`
	Tile                 string    `json:"tile"`
	ProductDiscriminator string    `json:"product_discriminator"`
	CloudCover           string    `json:"cloud_cover"`
	GRSVersion           string    `json:"grs_ver"`
}

const numNameFields = 9

const sensingTimeFormat = "20060102T150405"

// ParseMetadata extracts the metadata encoded in a GRS product file
// name. Only the basename of path is inspected; the trailing extension
// is dropped before splitting. Field values beyond the sensing time are
// taken as-is, without semantic validation.
func ParseMetadata(path string) (*Metadata, error) {
	basename := filepath.Base(path)
	name := strings.TrimSuffix(basename, filepath.Ext(basename))

	fields := strings.Split(name, "_")
	if len(fields) != numNameFields {
		return nil, fmt.Errorf("ambiguous GRS file name %s: expected %d underscore-delimited fields, found %d", basename, numNameFields, len(fields))
	}

	date, err := time.Parse(sensingTimeFormat, fields[2])
	if err != nil {
		return nil, fmt.Errorf("could not parse sensing time %s in %s: %v", fields[2], basename, err)
	}

	return &Metadata{
		InputFile:            path,
		Basename:             basename,
		Mission:              fields[0],
		ProdLvl:              fields[1],
		StrDate:              fields[2],
		Date:                 date,
		Year:                 fmt.Sprintf("%02d", date.Year()),
		Month:                fmt.Sprintf("%02d", int(date.Month())),
		Day:                  fmt.Sprintf("%02d", date.Day()),
		BaselineAlgoVersion:  fields[3],
		RelativeOrbit:        fields[4],
		Tile:                 fields[5],
		ProductDiscriminator: fields[6],
		CloudCover:           fields[7],
		GRSVersion:           fields[8],
	}, nil
}
