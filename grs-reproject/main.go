package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/nci/grstools/gdalprocess"
	"github.com/nci/grstools/utils"
)

func outputPath(inPath, outDir string) string {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+"_reproj.tif")
}

func main() {
	confFile := flag.String("conf", "", "path to a YAML config file")
	targetCRS := flag.String("t_srs", "", "target CRS, overrides the config file")
	concurrency := flag.Int("c", 0, "number of files reprojected concurrently, overrides the config file")
	outDir := flag.String("outdir", "", "output directory for batch mode")
	flag.Parse()

	config, err := utils.LoadConfig(*confFile)
	if err != nil {
		log.Fatal(err)
	}
	if *targetCRS != "" {
		config.TargetCRS = *targetCRS
	}
	if *concurrency > 0 {
		config.Concurrency = *concurrency
	}

	gdalprocess.InitGdal()

	if *outDir == "" {
		if flag.NArg() != 2 {
			log.Fatal("Usage: grs-reproject [options] <input> <output>, or grs-reproject [options] -outdir <dir> <input>...")
		}
		if err := gdalprocess.Reproject(flag.Arg(0), flag.Arg(1), config.TargetCRS); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() < 1 {
		log.Fatal("Please provide at least one input file")
	}

	var nErrors int64
	limiter := utils.NewConcLimiter(config.Concurrency)
	for _, inPath := range flag.Args() {
		limiter.Acquire()
		go func(inPath string) {
			defer limiter.Release()
			if err := gdalprocess.Reproject(inPath, outputPath(inPath, *outDir), config.TargetCRS); err != nil {
				log.Println(err)
				atomic.AddInt64(&nErrors, 1)
			}
		}(inPath)
	}
	limiter.Wait()

	if nErrors > 0 {
		log.Fatalf("%d of %d files failed", nErrors, flag.NArg())
	}
}
