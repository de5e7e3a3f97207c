package shows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func showAt(t time.Time) Show {
	return Show{ArtistID: 1, VenueID: 1, StartTime: t}
}

func TestPartition(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	past, upcoming := Partition([]Show{
		showAt(now.Add(-time.Hour)),
		showAt(now.Add(time.Hour)),
		showAt(now.Add(-time.Minute)),
	}, now)

	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 1)
	// input order preserved on both sides
	assert.True(t, past[0].StartTime.Before(past[1].StartTime))
}

func TestPartitionBoundaryIsUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	past, upcoming := Partition([]Show{showAt(now)}, now)

	assert.Len(t, past, 0)
	assert.Len(t, upcoming, 1)
}

func TestPartitionEmptyInput(t *testing.T) {
	past, upcoming := Partition(nil, time.Now())
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestFormatStartTime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tue, 21 May 2019 21:30:00 +0000", FormatStartTime(ts))
}

func TestFormatDisplayPresets(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDisplay(ts, PresetFull))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDisplay(ts, PresetMedium))
	// unknown presets fall back to medium
	assert.Equal(t, FormatDisplay(ts, PresetMedium), FormatDisplay(ts, "bogus"))
}
