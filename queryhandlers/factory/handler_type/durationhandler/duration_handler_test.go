package durationhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

func newDataset(durations ...float64) *dataset.Dataset {
	records := make([]trip.TripRecord, 0, len(durations))
	for _, duration := range durations {
		records = append(records, trip.TripRecord{Duration: duration})
	}
	return dataset.NewDataset("washington", records, false, nil)
}

func TestComputeDurationStats(t *testing.T) {
	stats, err := ComputeDurationStats(newDataset(10, 20, 30))
	require.NoError(t, err)
	assert.Equal(t, DurationStats{TotalDuration: 60, MeanDuration: 20}, stats)
}

func TestGenerateResponse(t *testing.T) {
	response, err := NewDurationHandler().GenerateResponse(newDataset(10, 20, 30))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Total travel time in seconds is 60 s",
		"Mean travel time in seconds is 20.00 s",
	}, response.Lines)
}

func TestGenerateResponseRoundsMean(t *testing.T) {
	response, err := NewDurationHandler().GenerateResponse(newDataset(1, 2, 2, -1.5))
	require.NoError(t, err)
	assert.Equal(t, "Total travel time in seconds is 3.5 s", response.Lines[0])
	assert.Equal(t, "Mean travel time in seconds is 0.88 s", response.Lines[1])
}

func TestEmptyDataset(t *testing.T) {
	_, err := NewDurationHandler().GenerateResponse(newDataset())
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}
