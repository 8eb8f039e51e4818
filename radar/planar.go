package radar

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/grailbio/base/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nullsector/invaderscan/coords"
	"github.com/nullsector/invaderscan/gridmap"
	"github.com/nullsector/invaderscan/identified"
	"github.com/nullsector/invaderscan/sat"
	"github.com/nullsector/invaderscan/scanner"
)

// Planar enumerates every window that fits entirely inside a planar map,
// in row-major order by top-left corner, pre-filtering with a
// summed-area table before running the full comparison.
type Planar struct {
	gridMap gridmap.Planar
	scan    scanner.Scanner
	table   sat.Table
	scanID  uuid.UUID

	cx, cy int
	done   bool

	hits []identified.Invader
}

// NewPlanar builds a Planar radar over m, targeting the invader bound to
// sc. It fails with ErrMapTooSmall if the invader is wider or taller than
// the map.
func NewPlanar(m gridmap.Planar, sc scanner.Scanner) (*Planar, error) {
	w, h := sc.RequiredFrameSize()
	if w > m.Width() || h > m.Height() {
		return nil, ErrMapTooSmall
	}
	return &Planar{
		gridMap: m,
		scan:    sc,
		table:   sat.Build(m.Bits()),
		scanID:  uuid.New(),
	}, nil
}

// ScanID returns the identifier this radar instance was tagged with at
// construction, useful for correlating log lines across concurrent
// scans in the same process.
func (r *Planar) ScanID() uuid.UUID { return r.scanID }

// next advances the enumeration cursor and returns the next window, or
// false once every admissible position has been yielded. The admission
// test (cx+w-1 < width) is evaluated before the cursor advances, so the
// last column and last row are still visited; this mirrors the reference
// implementation precisely to keep enumeration order identical.
func (r *Planar) next() (coords.Frame, bool) {
	w, h := r.scan.RequiredFrameSize()
	for {
		if r.done {
			return coords.Frame{}, false
		}
		if r.cx+w-1 < r.gridMap.Width() {
			if r.cy+h-1 < r.gridMap.Height() {
				f := coords.New(r.cx, r.cy, r.cx+w-1, r.cy+h-1)
				r.cx++
				return f, true
			}
			r.done = true
			return coords.Frame{}, false
		}
		r.cx = 0
		r.cy++
	}
}

// Scan runs the full planar search to completion: enumerate every
// window, discard it via the summed-area pre-filter when its 1-bit count
// is below the scanner's signal threshold, and otherwise extract and compare it,
// recording a hit when the similarity ratio meets or exceeds the
// scanner's threshold.
func (r *Planar) Scan() error {
	for {
		c, ok := r.next()
		if !ok {
			return nil
		}
		if err := r.evaluate(c); err != nil {
			return err
		}
	}
}

func (r *Planar) evaluate(c coords.Frame) error {
	signalBits := r.table.Sum(c)
	if !r.scan.IsWorthProcessingFrame(signalBits) {
		return nil
	}
	frame := r.gridMap.FrameAt(c)
	similarity, err := r.scan.ProcessFrame(frame)
	if err != nil {
		return err
	}
	if similarity >= r.scan.SimilarityThreshold() {
		r.hits = append(r.hits, identified.New(r.scan.Target(), frame, similarity, c))
	}
	return nil
}

// IdentifiedInvaders returns every hit found so far, in discovery order.
func (r *Planar) IdentifiedInvaders() []identified.Invader {
	return r.hits
}

// ScanParallel runs the same search as Scan, but stripes the map by
// starting row across workers goroutines. The summed-area table is
// read-only after construction, so stripes need no synchronization while
// running; each stripe's hits are merged and re-sorted into the same
// row-major discovery order Scan would have produced once every worker
// finishes. A workers value <= 1 runs the single-threaded path.
func (r *Planar) ScanParallel(workers int) error {
	if workers <= 1 {
		return r.Scan()
	}
	w, h := r.scan.RequiredFrameSize()
	lastY := r.gridMap.Height() - h
	if lastY < 0 {
		return nil
	}

	stripes := splitRange(0, lastY+1, workers)
	results := make([][]identified.Invader, len(stripes))

	g := new(errgroup.Group)
	for i, stripe := range stripes {
		i, stripe := i, stripe
		g.Go(func() error {
			hits, err := scanStripe(r.gridMap, r.table, r.scan, stripe.start, stripe.end, w)
			if err != nil {
				return errors.E(err, fmt.Sprintf("scanning rows %d-%d:", stripe.start, stripe.end))
			}
			results[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, hits := range results {
		r.hits = append(r.hits, hits...)
	}
	sort.SliceStable(r.hits, func(i, j int) bool {
		a, b := r.hits[i].Coords, r.hits[j].Coords
		if a.YTop != b.YTop {
			return a.YTop < b.YTop
		}
		return a.XLeft < b.XLeft
	})
	return nil
}

type rowStripe struct{ start, end int }

// splitRange divides [start, end) into at most n contiguous stripes of
// as-equal-as-possible size.
func splitRange(start, end, n int) []rowStripe {
	total := end - start
	if n > total {
		n = total
	}
	if n < 1 {
		return nil
	}
	base := total / n
	rem := total % n
	stripes := make([]rowStripe, 0, n)
	cur := start
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		stripes = append(stripes, rowStripe{start: cur, end: cur + size})
		cur += size
	}
	return stripes
}

// scanStripe runs the planar scan pipeline over starting rows
// [yStart, yEnd), independently of any other stripe.
func scanStripe(m gridmap.Planar, table sat.Table, sc scanner.Scanner, yStart, yEnd, w int) ([]identified.Invader, error) {
	_, h := sc.RequiredFrameSize()
	var hits []identified.Invader
	for y := yStart; y < yEnd; y++ {
		for x := 0; x+w-1 < m.Width(); x++ {
			c := coords.New(x, y, x+w-1, y+h-1)
			signalBits := table.Sum(c)
			if !sc.IsWorthProcessingFrame(signalBits) {
				continue
			}
			frame := m.FrameAt(c)
			similarity, err := sc.ProcessFrame(frame)
			if err != nil {
				return nil, err
			}
			if similarity >= sc.SimilarityThreshold() {
				hits = append(hits, identified.New(sc.Target(), frame, similarity, c))
			}
		}
	}
	return hits, nil
}
