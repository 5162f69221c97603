package report

import (
	"github.com/fatih/color"
)

// colorScheme defines the colours used by the text renderer.
type colorScheme struct {
	Title     *color.Color
	Name      *color.Color
	Time      *color.Color
	Percent   *color.Color
	Bandwidth *color.Color
	Faults    *color.Color
	Warning   *color.Color
	Dim       *color.Color
}

func newColorScheme(enabled bool) *colorScheme {
	scheme := &colorScheme{
		Title:     color.New(color.Bold),
		Name:      color.New(color.FgCyan, color.Bold),
		Time:      color.New(color.FgGreen),
		Percent:   color.New(color.FgYellow),
		Bandwidth: color.New(color.FgMagenta),
		Faults:    color.New(color.FgBlue),
		Warning:   color.New(color.FgRed, color.Bold),
		Dim:       color.New(color.Faint),
	}

	for _, c := range scheme.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return scheme
}

func (s *colorScheme) all() []*color.Color {
	return []*color.Color{s.Title, s.Name, s.Time, s.Percent, s.Bandwidth, s.Faults, s.Warning, s.Dim}
}
