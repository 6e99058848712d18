package timehandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

func newTrip(startTime time.Time) trip.TripRecord {
	return trip.TripRecord{StartTime: startTime, EndTime: startTime.Add(time.Minute), StartStation: "A", EndStation: "B"}
}

func TestComputeTimeStats(t *testing.T) {
	ds := dataset.NewDataset("chicago", []trip.TripRecord{
		newTrip(time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)),  // Monday
		newTrip(time.Date(2017, time.March, 7, 17, 0, 0, 0, time.UTC)),   // Tuesday
		newTrip(time.Date(2017, time.January, 9, 8, 30, 0, 0, time.UTC)), // Monday
		newTrip(time.Date(2017, time.January, 10, 9, 0, 0, 0, time.UTC)), // Tuesday
	}, true, nil)

	stats, err := ComputeTimeStats(ds)
	require.NoError(t, err)
	assert.Equal(t, time.January, stats.Month)
	// Monday and Tuesday are tied, Monday is seen first
	assert.Equal(t, "Monday", stats.Weekday)
	assert.Equal(t, 8, stats.Hour)
}

func TestGenerateResponse(t *testing.T) {
	ds := dataset.NewDataset("chicago", []trip.TripRecord{
		newTrip(time.Date(2017, time.March, 1, 23, 0, 0, 0, time.UTC)),
		newTrip(time.Date(2017, time.January, 2, 7, 0, 0, 0, time.UTC)),
		newTrip(time.Date(2017, time.January, 2, 7, 0, 0, 0, time.UTC)),
		newTrip(time.Date(2017, time.January, 2, 7, 0, 0, 0, time.UTC)),
	}, true, nil)

	response, err := NewTimeHandler().GenerateResponse(ds)
	require.NoError(t, err)
	assert.Equal(t, queryID, response.GetQueryID())
	assert.Equal(t, []string{
		"The most common month is January",
		"The most common day of week is Monday",
		"The most common start hour is 7",
	}, response.Lines)
}

func TestEmptyDataset(t *testing.T) {
	_, err := NewTimeHandler().GenerateResponse(dataset.NewDataset("chicago", nil, true, nil))
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}
