package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wesleyorama2/zoneprof/report"
)

func TestRun_JSONValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	if err := run(path, "json"); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := report.Validate(data); err != nil {
		t.Fatalf("sample report does not validate: %v", err)
	}

	name, err := report.Query(data, "$.zones[4].name")
	if err != nil {
		t.Fatal(err)
	}
	if name != "inflate" {
		t.Errorf("zones[4].name = %q, want inflate", name)
	}
}

func TestRun_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.html")
	if err := run(path, "html"); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "3.00 GHz") {
		t.Error("expected the sample frequency in the HTML report")
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "sample.pdf"), "pdf"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCreateSampleSession(t *testing.T) {
	sess := createSampleSession()
	entries := sess.Entries()
	if len(entries) != 5 {
		t.Fatalf("got %d zones, want 5", len(entries))
	}

	frame, decode, inflate := entries[1], entries[3], entries[4]
	if frame.HitCount != 240 || inflate.HitCount != 240 {
		t.Errorf("hit counts = %d/%d, want 240", frame.HitCount, inflate.HitCount)
	}
	if decode.ExclusiveTicks != decode.InclusiveTicks-inflate.InclusiveTicks {
		t.Error("decode exclusive ticks do not exclude inflate")
	}
}
