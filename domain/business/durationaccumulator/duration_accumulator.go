package durationaccumulator

import dataErrors "bikeshare/domain/errors"

// DurationAccumulator struct that collects the duration of the rides
// + Counter: counts the amount of rides collected
// + TotalDuration: sum of durations of rides, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

// UpdateAccumulator adds a ride. Zero or negative durations are summed as they come
func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, dataErrors.ErrEmptyDataset
	}
	return da.TotalDuration / float64(da.Counter), nil
}
