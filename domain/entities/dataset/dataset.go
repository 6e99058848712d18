package dataset

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// Dataset ordered trips of a city. Once built it is never modified: Filter returns a new Dataset.
// + City: city which belongs the data
// + HasDemographics: true if the source exposes both Gender and Birth Year columns
// + Stations: optional catalog of station coordinates indexed by station name
type Dataset struct {
	City            string
	HasDemographics bool
	Stations        map[string]station.StationData
	records         []trip.TripRecord
}

func NewDataset(city string, records []trip.TripRecord, hasDemographics bool, stations map[string]station.StationData) *Dataset {
	return &Dataset{
		City:            city,
		HasDemographics: hasDemographics,
		Stations:        stations,
		records:         records,
	}
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.records) == 0
}

// Records returns a copy of the trips, so callers cannot mutate the dataset
func (d *Dataset) Records() []trip.TripRecord {
	records := make([]trip.TripRecord, len(d.records))
	copy(records, d.records)
	return records
}

// Slice returns the trips in [from, to), clamped to the dataset bounds
func (d *Dataset) Slice(from int, to int) []trip.TripRecord {
	if from < 0 {
		from = 0
	}
	if to > len(d.records) {
		to = len(d.records)
	}
	if from >= to {
		return nil
	}
	page := make([]trip.TripRecord, to-from)
	copy(page, d.records[from:to])
	return page
}

// Filter keeps the trips whose start time matches the month and day of the FilterSpec.
// The relative order of the trips is preserved and the result is indexed from 0
func (d *Dataset) Filter(spec filter.FilterSpec) *Dataset {
	month := spec.GetMonthNumber()
	weekday := spec.GetWeekdayName()

	filtered := make([]trip.TripRecord, 0, len(d.records))
	for _, record := range d.records {
		if spec.FilterByMonth() && record.StartTime.Month() != month {
			continue
		}
		if spec.FilterByDay() && record.GetWeekday() != weekday {
			continue
		}
		filtered = append(filtered, record)
	}

	return NewDataset(d.City, filtered, d.HasDemographics, d.Stations)
}

// HasStations returns true if the dataset carries station coordinates
func (d *Dataset) HasStations() bool {
	return len(d.Stations) > 0
}

// GetStation returns the coordinates of the given station
func (d *Dataset) GetStation(name string) (station.StationData, bool) {
	stationData, ok := d.Stations[name]
	return stationData, ok
}
