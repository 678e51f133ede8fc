package formatter

import "fmt"

// FormatTime renders accumulated work time as HH:MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatCountdown renders a session countdown as MM:SS. Countdowns never
// exceed a few hours, so minutes run past 59 rather than rolling over.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m := seconds / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
