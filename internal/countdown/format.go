package countdown

import "fmt"

const secondsPerDay = 86400

// FormatRemaining renders seconds as "HH:MM:SS", prefixed with "N day(s) "
// once a whole day remains. Hours wrap at 24 so the day prefix and the
// clock part together read as days plus a wall-clock remainder.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	d := seconds / secondsPerDay
	h := (seconds / 3600) % 24
	m := (seconds % 3600) / 60
	s := seconds % 60

	clock := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	if d > 0 {
		return fmt.Sprintf("%d day(s) %s", d, clock)
	}
	return clock
}
