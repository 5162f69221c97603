// Command generate-sample-report writes a report for a synthetic session so the
// report layouts can be previewed without running a workload.
//
//	generate-sample-report [FILE] [FORMAT]
//
// FILE defaults to sample-report.html and FORMAT to the file extension.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wesleyorama2/zoneprof/clock"
	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

// sampleFrequency is the pretend cycle counter rate: 3 GHz.
const sampleFrequency = 3_000_000_000

func main() {
	outputPath := "sample-report.html"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}
	formatName := strings.TrimPrefix(filepath.Ext(outputPath), ".")
	if len(os.Args) > 2 {
		formatName = os.Args[2]
	}

	if err := run(outputPath, formatName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample report generated: %s\n", outputPath)
}

func run(outputPath, formatName string) error {
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	r := report.Build(createSampleSession(), sampleFrequency)
	if err := report.Write(r, report.Options{Format: format, Color: report.ColorNever, Writer: f}); err != nil {
		return err
	}
	return f.Close()
}

// createSampleSession replays a small decoder pipeline against a manual clock:
// a read, then per-frame parse and decode with decode nesting an inflate step.
func createSampleSession() *zone.Session {
	m := &clock.Manual{}
	cfg := zone.DefaultConfig()
	cfg.Clock = m
	cfg.Faults = m
	cfg.PageFaults = true
	cfg.MinMax = true
	cfg.Histogram = true
	sess := zone.NewSession(cfg)

	var (
		readSlot    = sess.GetNextSlot()
		frameSlot   = sess.GetNextSlot()
		parseSlot   = sess.GetNextSlot()
		decodeSlot  = sess.GetNextSlot()
		inflateSlot = sess.GetNextSlot()
	)

	sess.Start()
	m.Advance(12_000)

	read := sess.BeginZone("read file", readSlot, 48<<20)
	m.Advance(9_600_000)
	m.Faults += 12_288
	sess.EndZone(read)

	for i := uint64(0); i < 240; i++ {
		frame := sess.BeginZone("frame", frameSlot, 0)

		parse := sess.BeginZone("parse header", parseSlot, 512)
		m.Advance(4_000 + i%7*300)
		sess.EndZone(parse)

		decode := sess.BeginZone("decode", decodeSlot, 200<<10)
		m.Advance(60_000 + i%11*2_500)
		inflate := sess.BeginZone("inflate", inflateSlot, 200<<10)
		m.Advance(180_000 + i%5*9_000)
		m.Faults += i % 3
		sess.EndZone(inflate)
		m.Advance(15_000)
		sess.EndZone(decode)

		m.Advance(2_000)
		sess.EndZone(frame)
	}

	m.Advance(40_000)
	sess.Stop()
	return sess
}
