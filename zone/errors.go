package zone

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned (or panicked with) when a slot allocation
	// would reach the configured capacity. The only remedy is a larger capacity.
	ErrCapacityExceeded = errors.New("zone slot capacity exceeded")

	// ErrCalibrationFailed is returned when the wall clock did not advance during
	// calibration. Reports fall back to raw ticks.
	ErrCalibrationFailed = errors.New("cycle counter calibration failed")
)

// CapacityError reports an allocation beyond the registry capacity.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: capacity is %d (slots 1..%d)", ErrCapacityExceeded, e.Capacity, e.Capacity-1)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
