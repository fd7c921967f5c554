package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/nci/grstools/gdalprocess"
	"github.com/nci/grstools/grs"
)

type productInfo struct {
	*grs.Metadata
	TileEPSG int                     `json:"tile_epsg,omitempty"`
	Raster   *gdalprocess.RasterInfo `json:"raster,omitempty"`
}

func ensure(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	rasterInfo := flag.Bool("r", false, "include raster layout extracted from the file itself")
	tileEPSG := flag.Bool("e", false, "include the EPSG code of the tile's UTM projection")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Please provide a path to a GRS file or '-' for reading from stdin")
	}

	path := flag.Arg(0)
	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		path = scanner.Text()
	}

	meta, err := grs.ParseMetadata(path)
	ensure(err)

	info := &productInfo{Metadata: meta}

	if *tileEPSG {
		epsg, err := grs.TileEPSG(meta.Tile)
		ensure(err)
		info.TileEPSG = epsg
	}

	if *rasterInfo {
		gdalprocess.InitGdal()
		raster, err := gdalprocess.ExtractRasterInfo(path)
		ensure(err)
		info.Raster = raster
	}

	out, err := json.Marshal(info)
	ensure(err)

	_, err = os.Stdout.Write(out)
	ensure(err)
}
