package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/akmistry/almanac/internal/app/seedmap"
)

var (
	partFlag    = flag.String("part", "all", "Puzzle part to solve: 1, 2 or all")
	verboseFlag = flag.Bool("verbose", false, "Verbose logging")

	blobstoreFlag     = flag.String("blobstore", "", "URL for blob storage holding the input")
	blobCacheDirFlag  = flag.String("blob-cache-dir", "", "Directory for caching blob reads")
	blobCacheSizeFlag = flag.String("blob-cache-size", "64M", "Size of blob cache")

	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Print("Usage: seedmap [flags] <INPUT>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	if *verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	part, err := seedmap.ParsePart(*partFlag)
	if err != nil {
		log.Printf("Invalid part flag: %v", err)
		os.Exit(1)
	}

	opts := seedmap.SourceOptions{
		BlobStore: *blobstoreFlag,
		CacheDir:  *blobCacheDirFlag,
	}
	if opts.CacheDir != "" {
		cacheSize, err := seedmap.ParseSizeString(*blobCacheSizeFlag)
		if err != nil {
			log.Printf("Invalid blob cache size: %v", err)
			os.Exit(1)
		}
		opts.CacheSize = int64(cacheSize)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	a, err := seedmap.LoadAlmanac(input, opts)
	if err != nil {
		log.Printf("Error loading %s: %v", input, err)
		os.Exit(1)
	}
	slog.Debug("loaded almanac", "seeds", len(a.Seeds), "stages", len(a.Stages))

	results, err := seedmap.Solve(a, part)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
	for _, r := range results {
		fmt.Println(r)
	}
}
