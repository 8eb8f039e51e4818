// invaderscan locates occurrences of a known ASCII invader pattern within
// an ASCII map, reporting each candidate match's similarity ratio and
// location. This binary owns everything outside the scanning core's
// concern: ASCII parsing, pretty-printing, CLI flags, and file I/O; the
// search itself lives entirely in this module's library packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"

	"github.com/nullsector/invaderscan/ascii"
	"github.com/nullsector/invaderscan/bitmatrix"
	"github.com/nullsector/invaderscan/gridmap"
	"github.com/nullsector/invaderscan/identified"
	"github.com/nullsector/invaderscan/invader"
	"github.com/nullsector/invaderscan/radar"
	"github.com/nullsector/invaderscan/scanner"
)

// unsetThreshold is the sentinel a -1 flag value maps to, since 0 is
// itself a valid threshold and cannot serve as "not provided".
const unsetThreshold = -1.0

var (
	toroidal            = flag.Bool("toroidal", false, "Treat the map as a sphere: windows may wrap across either edge")
	signalThreshold     = flag.Float64("signal-threshold", unsetThreshold, "Override the default signal pre-filter threshold (0-1)")
	similarityThreshold = flag.Float64("similarity-threshold", unsetThreshold, "Override the default similarity threshold (0-1)")
	parallelism         = flag.Int("parallel", 1, "Number of goroutines to stripe a planar scan across; ignored with -toroidal")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] invaderpath mappath\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("expected exactly 2 positional arguments (invaderpath, mappath), got %d", flag.NArg())
	}
	invaderPath, mapPath := flag.Arg(0), flag.Arg(1)

	inv, err := loadInvader(invaderPath)
	if err != nil {
		log.Fatalf("loading invader %q: %v", invaderPath, err)
	}

	var opts []scanner.Option
	if *signalThreshold != unsetThreshold {
		opts = append(opts, scanner.WithSignalThreshold(*signalThreshold))
	}
	if *similarityThreshold != unsetThreshold {
		opts = append(opts, scanner.WithSimilarityThreshold(*similarityThreshold))
	}
	sc, err := scanner.New(inv, opts...)
	if err != nil {
		log.Fatalf("building scanner: %v", err)
	}

	mapBits, err := loadMatrix(mapPath)
	if err != nil {
		log.Fatalf("loading map %q: %v", mapPath, err)
	}

	hits, err := runScan(mapBits, sc)
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	for _, h := range hits {
		fmt.Println(h.PrettyString())
	}
}

func runScan(mapBits bitmatrix.Matrix, sc scanner.Scanner) ([]identified.Invader, error) {
	if *toroidal {
		sphereMap, err := gridmap.NewSpherical(mapBits)
		if err != nil {
			return nil, err
		}
		r, err := radar.NewSpherical(sphereMap, sc)
		if err != nil {
			return nil, err
		}
		if err := r.Scan(); err != nil {
			return nil, err
		}
		log.Printf("scan %s: %d hits", r.ScanID(), len(r.IdentifiedInvaders()))
		return r.IdentifiedInvaders(), nil
	}

	flatMap, err := gridmap.NewPlanar(mapBits)
	if err != nil {
		return nil, err
	}
	r, err := radar.NewPlanar(flatMap, sc)
	if err != nil {
		return nil, err
	}
	if err := r.ScanParallel(*parallelism); err != nil {
		return nil, err
	}
	log.Printf("scan %s: %d hits", r.ScanID(), len(r.IdentifiedInvaders()))
	return r.IdentifiedInvaders(), nil
}

func loadInvader(path string) (invader.Invader, error) {
	m, err := loadMatrix(path)
	if err != nil {
		return invader.Invader{}, err
	}
	return invader.New(m)
}

func loadMatrix(path string) (bitmatrix.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bitmatrix.Matrix{}, errors.E(err, "reading file:", path)
	}
	m, err := ascii.ParseMatrix(string(raw))
	if err != nil {
		return bitmatrix.Matrix{}, errors.E(err, "parsing ASCII matrix:", path)
	}
	return m, nil
}
