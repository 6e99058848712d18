package dataloader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

// readStations reads a catalog with name, latitude and longitude columns. Station names are the
// same that appear in the Start Station and End Station columns of the trips
func readStations(stationsFilepath string) (map[string]station.StationData, error) {
	stationsFile, err := os.Open(stationsFilepath)
	if err != nil {
		return nil, err
	}
	defer stationsFile.Close()

	rows, err := csv.NewReader(stationsFile).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrInvalidStationData, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty stations file", dataErrors.ErrInvalidStationData)
	}

	indexes := make(map[string]int, len(rows[0]))
	for idx, name := range rows[0] {
		indexes[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if _, ok := indexes[column]; !ok {
			return nil, fmt.Errorf("%w: %s", dataErrors.ErrMissingColumn, column)
		}
	}

	stations := make(map[string]station.StationData, len(rows)-1)
	for _, row := range rows[1:] {
		stationData, err := getStationData(row, indexes)
		if err != nil {
			return nil, err
		}
		stations[stationData.Name] = stationData
	}
	return stations, nil
}

func getStationData(row []string, indexes map[string]int) (station.StationData, error) {
	name := row[indexes[stationNameColumn]]

	latitude, err := strconv.ParseFloat(strings.TrimSpace(row[indexes[stationLatitudeColumn]]), 64)
	if err != nil {
		return station.StationData{}, fmt.Errorf("%w: latitude of %s: %w", dataErrors.ErrInvalidCoordinate, name, dataErrors.ErrInvalidStationData)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(row[indexes[stationLongitudeColumn]]), 64)
	if err != nil {
		return station.StationData{}, fmt.Errorf("%w: longitude of %s: %w", dataErrors.ErrInvalidCoordinate, name, dataErrors.ErrInvalidStationData)
	}

	return station.StationData{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
