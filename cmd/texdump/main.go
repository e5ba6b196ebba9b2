// texdump - wrap raw texture payloads into DDS, KTX, TGA or PKM files
//
// Usage:
//
//	texdump convert -manifest textures.toml -out dir [-workers N] [-compress none|lz4|zstd] [-container auto|dds|ktx|tga|pkm] [-overwrite]
//	texdump inspect file.dds [file.ktx ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/woozymasta/texdump"
	"github.com/woozymasta/texdump/manifest"
	"github.com/woozymasta/texdump/sink"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("texdump: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("ERROR %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  texdump convert -manifest textures.toml -out dir [-workers N] [-compress none|lz4|zstd] [-container auto|dds|ktx|tga|pkm] [-overwrite]")
	fmt.Fprintln(os.Stderr, "  texdump inspect file...")
}

type convertStats struct {
	textures atomic.Int64
	files    atomic.Int64
	skipped  atomic.Int64
	failed   atomic.Int64
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	manifestPath := fs.String("manifest", "", "texture manifest (TOML)")
	outDir := fs.String("out", "out", "output directory")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel conversions")
	compress := fs.String("compress", "none", "output compression: none, lz4, zstd")
	containerName := fs.String("container", "auto", "force container: auto, dds, ktx, tga, pkm")
	overwrite := fs.Bool("overwrite", false, "replace existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" {
		return errors.New("-manifest is required")
	}
	if *workers < 1 {
		*workers = 1
	}

	compression, err := sink.ParseCompression(*compress)
	if err != nil {
		return err
	}
	container, err := texdump.ParseContainer(*containerName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, *containerName)
	}

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		return err
	}

	dir, err := sink.New(*outDir, sink.Options{Compression: compression, Overwrite: *overwrite})
	if err != nil {
		return err
	}
	defer func() { _ = dir.Close() }()

	log.Printf("converting %d textures with %d workers (compression %s)", len(m.Textures), *workers, compression)

	var stats convertStats
	jobs := make(chan *manifest.Entry, *workers*2)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for entry := range jobs {
			convertEntry(entry, container, dir, &stats)
		}
	}

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go worker()
	}
	for i := range m.Textures {
		jobs <- &m.Textures[i]
	}
	close(jobs)
	wg.Wait()

	log.Printf("done: %d textures, %d files, %d skipped, %d failed",
		stats.textures.Load(), stats.files.Load(), stats.skipped.Load(), stats.failed.Load())

	if n := stats.failed.Load(); n > 0 {
		return fmt.Errorf("%d textures failed", n)
	}

	return nil
}

func convertEntry(entry *manifest.Entry, container texdump.Container, dir *sink.Dir, stats *convertStats) {
	stats.textures.Add(1)

	tex, err := entry.Texture()
	if err != nil {
		log.Printf("ERROR %v", err)
		stats.failed.Add(1)
		return
	}

	res, err := texdump.EncodeAs(tex, container)
	if err != nil {
		log.Printf("ERROR %v", err)
		stats.failed.Add(1)
		return
	}

	for _, s := range res.Skips {
		log.Printf("WARN %s", s)
		stats.skipped.Add(1)
	}

	if len(res.Outputs) == 0 {
		return
	}

	paths, err := dir.WriteAll(res.Outputs)
	switch {
	case errors.Is(err, sink.ErrExists):
		log.Printf("WARN %s: %v (use -overwrite to replace)", tex.Name, err)
		stats.skipped.Add(1)
		return
	case err != nil:
		log.Printf("ERROR %s: %v", tex.Name, err)
		stats.failed.Add(1)
		return
	}

	for _, path := range paths {
		stats.files.Add(1)
		log.Printf("wrote %s", path)
	}
}

func runInspect(paths []string) error {
	if len(paths) == 0 {
		return errors.New("inspect: no files given")
	}

	var failed int
	for _, path := range paths {
		info, err := texdump.InspectFile(path)
		if err != nil {
			log.Printf("ERROR %s: %v", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: %s %dx%d, %d mips, format=%s\n",
			path, info.Container, info.Width, info.Height, info.MipMaps, info.Format)
	}

	if failed > 0 {
		return fmt.Errorf("%d files could not be inspected", failed)
	}

	return nil
}
