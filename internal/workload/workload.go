// Package workload contains small instrumented workloads used by the demo
// command. Each one exercises a different report column: hashing reports
// throughput, sorting reports nested exclusive time and page touching reports
// page faults.
package workload

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/wesleyorama2/zoneprof/zone"
)

const (
	pageSize    = 4096
	chunkSize   = 64 << 10
	defaultSize = 1 << 20
)

// Instrumenter opens zones around a function. Both *zone.Session and
// *profiler.Profiler satisfy it.
type Instrumenter interface {
	Profile(site *zone.Site, byteCount uint64, fn func())
	ProfileFunc(site *zone.Site, fn func())
}

// Options sizes the workloads.
type Options struct {
	// Size is the buffer size in bytes for hashing and page touching
	// (default 1 MiB).
	Size int
	// Iterations repeats every workload (default 1).
	Iterations int
	// Seed makes the generated data reproducible.
	Seed uint64
}

// Result holds values derived from the workloads so their work cannot be
// optimized away and so tests can check it.
type Result struct {
	Checksum     uint64
	StreamSum    uint64
	SortedValues int
	PagesTouched int
}

// Suite runs the workloads against one Instrumenter. A Suite's sites bind to
// the first session they see, so use one Suite per session.
type Suite struct {
	ins  Instrumenter
	opts Options
	rng  *rand.Rand
	buf  []byte

	runSite    zone.Site
	fillSite   zone.Site
	hashSite   zone.Site
	oneShot    zone.Site
	streamSite zone.Site
	sortSite   zone.Site
	genSite    zone.Site
	sliceSite  zone.Site
	touchSite  zone.Site
}

// New creates a suite. Zero option fields take their defaults.
func New(ins Instrumenter, opts Options) *Suite {
	if opts.Size <= 0 {
		opts.Size = defaultSize
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}

	s := &Suite{
		ins:  ins,
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		buf:  make([]byte, opts.Size),
	}
	s.fillSite.Name = "fill buffer"
	s.hashSite.Name = "hash"
	s.oneShot.Name = "xxh3 one-shot"
	s.streamSite.Name = "xxh3 stream"
	s.sortSite.Name = "sort"
	s.genSite.Name = "generate keys"
	s.sliceSite.Name = "slices.Sort"
	s.touchSite.Name = "touch pages"
	return s
}

// Run executes every workload Iterations times inside one zone named after
// this method.
func (s *Suite) Run() (Result, error) {
	var res Result
	var err error

	s.ins.ProfileFunc(&s.runSite, func() {
		for i := 0; i < s.opts.Iterations && err == nil; i++ {
			err = s.hash(&res)
			s.sort(&res)
			s.touch(&res)
		}
	})
	return res, err
}

func (s *Suite) hash(res *Result) error {
	size := uint64(len(s.buf))

	s.ins.Profile(&s.fillSite, size, func() {
		var word [8]byte
		for i := 0; i < len(s.buf); i += len(word) {
			binary.LittleEndian.PutUint64(word[:], s.rng.Uint64())
			copy(s.buf[i:], word[:])
		}
	})

	s.ins.Profile(&s.hashSite, 0, func() {
		s.ins.Profile(&s.oneShot, size, func() {
			res.Checksum = xxh3.Hash(s.buf)
		})
		s.ins.Profile(&s.streamSite, size, func() {
			h := xxh3.New()
			for off := 0; off < len(s.buf); off += chunkSize {
				end := min(off+chunkSize, len(s.buf))
				_, _ = h.Write(s.buf[off:end])
			}
			res.StreamSum = h.Sum64()
		})
	})

	if res.Checksum != res.StreamSum {
		return fmt.Errorf("xxh3 mismatch: one-shot %#x, stream %#x", res.Checksum, res.StreamSum)
	}
	return nil
}

func (s *Suite) sort(res *Result) {
	n := len(s.buf) / 8
	keys := make([]uint64, n)

	s.ins.Profile(&s.sortSite, uint64(n*8), func() {
		s.ins.Profile(&s.genSite, uint64(n*8), func() {
			for i := range keys {
				keys[i] = s.rng.Uint64()
			}
		})
		s.ins.Profile(&s.sliceSite, uint64(n*8), func() {
			slices.Sort(keys)
		})
	})

	if slices.IsSorted(keys) {
		res.SortedValues += n
	}
}

// touch writes one byte per page of a fresh allocation so the kernel has to
// fault every page in.
func (s *Suite) touch(res *Result) {
	size := len(s.buf)

	s.ins.Profile(&s.touchSite, uint64(size), func() {
		mem := make([]byte, size)
		for off := 0; off < len(mem); off += pageSize {
			mem[off] = byte(off)
			res.PagesTouched++
		}
	})
}
