// Package zone implements cycle-accurate timing of nested, named code regions.
//
// A zone is a region of code wrapped by BeginZone and EndZone. Each call site owns
// a slot in the session's aggregate table; the engine keeps, per slot, the
// inclusive time (including nested zones), the exclusive time (excluding them),
// the hit count and the number of bytes processed.
//
// # Basic Usage
//
//	sess := zone.NewSession(zone.DefaultConfig())
//	parse := sess.GetNextSlot()
//
//	sess.Start()
//	z := sess.BeginZone("parse", parse, uint64(len(input)))
//	doParse(input)
//	sess.EndZone(z)
//	sess.Stop()
//
//	freq := zone.EstimateFrequency(clock.System(), 100)
//
// Sites cache a call site's slot so allocation happens once:
//
//	var parseSite = zone.Site{Name: "parse"}
//
//	sess.Profile(&parseSite, uint64(len(input)), func() {
//		doParse(input)
//	})
//
// # Accounting
//
// EndZone subtracts the zone's elapsed ticks from its parent's exclusive time and
// adds them to its own, so for every zone
//
//	exclusive == inclusive - sum(children inclusive)
//
// The start tick is read last in BeginZone and the end tick first in EndZone so
// the engine's own bookkeeping stays outside the measured interval.
//
// # Optional Metrics
//
// Page faults, min/max hit time and latency histograms are enabled per Config.
// Their tables are only allocated when enabled.
//
// # Contract
//
// Sessions are not safe for concurrent use. Zones must nest in LIFO order and a
// slot must not be re-entered before it ends. Violations are not detected and
// produce meaningless numbers. Exceeding the slot capacity panics with a
// *CapacityError.
package zone
