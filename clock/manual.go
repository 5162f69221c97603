package clock

// Manual is a TimeSource and FaultCounter whose values are set directly.
// The zero value reads zero from every counter; Frequency defaults to 1 GHz.
type Manual struct {
	Cycles    uint64
	Wall      uint64
	Frequency uint64
	Faults    uint64

	// CycleReads counts calls to ReadCycleCounter.
	CycleReads int
}

func (m *Manual) ReadCycleCounter() uint64 {
	m.CycleReads++
	return m.Cycles
}

func (m *Manual) ReadWallClockTicks() uint64 {
	return m.Wall
}

func (m *Manual) ReadWallClockFrequency() uint64 {
	if m.Frequency == 0 {
		return 1_000_000_000
	}
	return m.Frequency
}

func (m *Manual) ReadPageFaults() uint64 {
	return m.Faults
}

// Advance moves the cycle counter forward by n.
func (m *Manual) Advance(n uint64) {
	m.Cycles += n
}

// Stepper is a synthetic TimeSource. Every wall clock read advances one step;
// the wall clock reads step*WallPerStep and the cycle counter reads
// step*CyclesPerStep. The true cycle frequency is therefore
// Frequency*CyclesPerStep/WallPerStep.
type Stepper struct {
	CyclesPerStep uint64
	WallPerStep   uint64
	Frequency     uint64

	step uint64
}

func (s *Stepper) ReadCycleCounter() uint64 {
	return s.step * s.CyclesPerStep
}

func (s *Stepper) ReadWallClockTicks() uint64 {
	s.step++
	return s.step * s.WallPerStep
}

func (s *Stepper) ReadWallClockFrequency() uint64 {
	return s.Frequency
}

// Steps returns the number of wall clock reads so far.
func (s *Stepper) Steps() uint64 {
	return s.step
}
