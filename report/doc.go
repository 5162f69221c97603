// Package report renders a finished zone session.
//
// Build turns a stopped session and the calibrated cycle frequency into a Report.
// Every slot with nonzero inclusive time becomes a Zone carrying its hit count,
// inclusive and exclusive share of the session, average time per hit and, when
// recorded, throughput, page faults, min/max and percentiles.
//
//	freq := zone.EstimateFrequency(clock.System(), 100)
//	r := report.Build(sess, freq)
//	err := report.Write(r, report.Options{Format: report.FormatText})
//
// A zero frequency means calibration failed. The report is then marked
// uncalibrated and renderers print raw tick counts only.
//
// # Formats
//
//   - text: console layout, coloured when writing to a terminal
//   - table: one row per zone
//   - json: validated by Validate against the embedded Schema
//   - yaml: same document as json
//   - html: standalone page with a bar per zone
//
// Query reads single values back out of a JSON report:
//
//	name, err := report.Query(data, "$.zones[0].name")
package report
