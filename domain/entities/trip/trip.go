package trip

import (
	"time"
)

// TripRecord struct that contains one bikeshare ride
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: rider category, e.g. Subscriber or Customer
// + Gender: rider gender. Empty if the cell was blank or the city has no demographic data
// + BirthYear: rider birth year. Zero if the cell was blank or the city has no demographic data
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
}

// GetWeekday returns the capitalized weekday name of the start time, e.g. Monday
func (tr TripRecord) GetWeekday() string {
	return tr.StartTime.Weekday().String()
}

// GetRoute returns the trip as "<start> to <end>"
func (tr TripRecord) GetRoute() string {
	return tr.StartStation + " to " + tr.EndStation
}

func (tr TripRecord) HasBirthYear() bool {
	return tr.BirthYear != 0
}
