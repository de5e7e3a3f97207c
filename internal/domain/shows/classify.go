package shows

import "time"

// Wire format used by the listing and detail views.
const startTimeLayout = "Mon, 02 Jan 2006 15:04:05 +0000"

// Display presets offered to the rendering layer.
const (
	PresetFull   = "full"
	PresetMedium = "medium"
)

// Partition splits shows into past and upcoming relative to now. A show
// starting exactly at now counts as upcoming. Input order is preserved on
// both sides.
func Partition(list []Show, now time.Time) (past, upcoming []Show) {
	past = []Show{}
	upcoming = []Show{}
	for _, s := range list {
		if s.StartTime.Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// FormatStartTime renders a start time in the wire format.
func FormatStartTime(t time.Time) string {
	return t.UTC().Format(startTimeLayout)
}

// FormatDisplay renders a start time using a named preset. Unknown presets
// fall back to medium.
func FormatDisplay(t time.Time, preset string) string {
	switch preset {
	case PresetFull:
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	default:
		return t.Format("Mon 01, 02, 2006 3:04PM")
	}
}
