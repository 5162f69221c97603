// Package config loads profiler settings from YAML or JSON files.
//
// A configuration file selects which metrics a profiling session records,
// how the cycle counter is calibrated and how the final report is rendered.
//
// Basic Usage:
//
//	cfg, err := config.Load("zoneprof.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	sess := zone.NewSession(cfg.SessionConfig())
//
// File Format:
//
//	zones:
//	  enabled: true
//	  capacity: 1024
//	  minMax: true
//	  histogram: false
//	  histogramSigFigs: 3
//	pageFaults: false
//	calibration:
//	  wait: 100ms
//	  frequencyHz: 0
//	report:
//	  format: text
//	  color: auto
//	  output: ""
//	log:
//	  level: info
//	  pretty: true
//
// Missing fields take the values returned by Default. Durations accept Go
// duration strings ("250ms") or plain integers, which are read as
// milliseconds.
package config
