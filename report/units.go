package report

import (
	"fmt"
)

// FormatSeconds scales a duration in seconds to s, ms, µs or ns.
func FormatSeconds(seconds float64) string {
	switch {
	case seconds == 0:
		return "0s"
	case seconds >= 1:
		return fmt.Sprintf("%.4fs", seconds)
	case seconds >= 1e-3:
		return fmt.Sprintf("%.4fms", seconds*1e3)
	case seconds >= 1e-6:
		return fmt.Sprintf("%.4fµs", seconds*1e6)
	default:
		return fmt.Sprintf("%.4fns", seconds*1e9)
	}
}

var siPrefixes = []string{"", "k", "M", "G", "T"}

// FormatCount scales a count with SI prefixes: 1234 -> "1.23k".
func FormatCount(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	v := float64(n)
	i := 0
	for v >= 1000 && i < len(siPrefixes)-1 {
		v /= 1000
		i++
	}
	return fmt.Sprintf("%.2f%s", v, siPrefixes[i])
}

var binaryPrefixes = []string{"", "Ki", "Mi", "Gi", "Ti"}

// FormatBytes scales a byte amount with binary prefixes: 1536 -> "1.50 KiB".
func FormatBytes(n float64) string {
	if n < 1024 {
		return fmt.Sprintf("%.0f B", n)
	}
	i := 0
	for n >= 1024 && i < len(binaryPrefixes)-1 {
		n /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %sB", n, binaryPrefixes[i])
}

// FormatBandwidth formats a byte rate: "1.50 GiB/s".
func FormatBandwidth(bytesPerSecond float64) string {
	return FormatBytes(bytesPerSecond) + "/s"
}

// FormatFrequency scales a frequency to Hz, kHz, MHz or GHz.
func FormatFrequency(hz uint64) string {
	v := float64(hz)
	unit := "Hz"
	for _, next := range []string{"kHz", "MHz", "GHz"} {
		if v <= 1000 {
			break
		}
		v /= 1000
		unit = next
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}
