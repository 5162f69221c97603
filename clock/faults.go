package clock

import (
	"fmt"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcFaults counts page faults (minor + major) of the current process.
//
// The process handle is opened once, cached and never released. A failed read
// returns the last successful value so the counter stays non-decreasing.
type ProcFaults struct {
	once    sync.Once
	proc    *process.Process
	openErr error

	last    uint64
	lastErr error
}

var (
	processFaults     *ProcFaults
	processFaultsOnce sync.Once
)

// ProcessFaults returns the process-wide page fault counter.
func ProcessFaults() *ProcFaults {
	processFaultsOnce.Do(func() {
		processFaults = &ProcFaults{}
	})
	return processFaults
}

// Open acquires the process handle. Repeated calls return the first result.
func (f *ProcFaults) Open() error {
	f.once.Do(func() {
		pid := os.Getpid()
		p, err := process.NewProcess(int32(pid))
		if err != nil {
			f.openErr = fmt.Errorf("open process %d: %w", pid, err)
			return
		}
		f.proc = p
	})
	return f.openErr
}

// ReadPageFaults returns the total number of page faults taken by the process.
func (f *ProcFaults) ReadPageFaults() uint64 {
	if err := f.Open(); err != nil {
		f.lastErr = err
		return f.last
	}

	stat, err := f.proc.PageFaults()
	if err != nil {
		f.lastErr = fmt.Errorf("read page faults: %w", err)
		return f.last
	}

	if total := stat.MinorFaults + stat.MajorFaults; total > f.last {
		f.last = total
	}
	f.lastErr = nil
	return f.last
}

// Err returns the error of the most recent read, if any.
func (f *ProcFaults) Err() error {
	return f.lastErr
}
