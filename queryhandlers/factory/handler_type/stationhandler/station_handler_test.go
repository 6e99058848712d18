package stationhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

func newTrip(startStation string, endStation string) trip.TripRecord {
	return trip.TripRecord{StartStation: startStation, EndStation: endStation}
}

func TestComputeStationStats(t *testing.T) {
	ds := dataset.NewDataset("chicago", []trip.TripRecord{
		newTrip("Canal St", "Clark St"),
		newTrip("Lake St", "Clark St"),
		newTrip("Lake St", "State St"),
		newTrip("Canal St", "State St"),
		newTrip("Lake St", "State St"),
	}, true, nil)

	stats, err := ComputeStationStats(ds)
	require.NoError(t, err)
	assert.Equal(t, "Lake St", stats.StartStation)
	assert.Equal(t, "State St", stats.EndStation)
	assert.Equal(t, "Lake St to State St", stats.Route)
}

func TestComputeStationStatsTieBreak(t *testing.T) {
	ds := dataset.NewDataset("chicago", []trip.TripRecord{
		newTrip("B", "Y"),
		newTrip("A", "X"),
	}, true, nil)

	stats, err := ComputeStationStats(ds)
	require.NoError(t, err)
	assert.Equal(t, StationStats{StartStation: "B", EndStation: "Y", Route: "B to Y"}, stats)
}

func TestGenerateResponse(t *testing.T) {
	ds := dataset.NewDataset("chicago", []trip.TripRecord{newTrip("A", "B")}, true, nil)

	response, err := NewStationHandler().GenerateResponse(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"The most commonly used start station is A",
		"The most commonly used end station is B",
		"The most frequent combination of start station and end station trip is A to B",
	}, response.Lines)
}

func TestEmptyDataset(t *testing.T) {
	_, err := NewStationHandler().GenerateResponse(dataset.NewDataset("chicago", nil, true, nil))
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}
