package dataloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const (
	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	durationColumn     = "Trip Duration"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"

	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"

	loaderType = "dataloader"
)

var requiredColumns = []string{startTimeColumn, endTimeColumn, durationColumn, startStationColumn, endStationColumn, userTypeColumn}

// tripColumns contains the index of each field to analyze. Gender and BirthYear are -1 when absent
type tripColumns struct {
	StartTime    int
	EndTime      int
	Duration     int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

func (tc tripColumns) hasDemographics() bool {
	return tc.Gender >= 0 && tc.BirthYear >= 0
}

type DataLoader struct {
	config config.DataConfig
}

func NewDataLoader(dataConfig config.DataConfig) *DataLoader {
	return &DataLoader{
		config: dataConfig,
	}
}

func (dl *DataLoader) getLogMessage(method string, city string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}

// Load reads the trips of spec.City and keeps the ones that match its month and day.
// The values of spec are matched case-insensitively. Any error is wrapped with ErrLoad
// and no dataset is returned
func (dl *DataLoader) Load(rawSpec filter.FilterSpec) (*dataset.Dataset, error) {
	spec, err := filter.ParseFilterSpec(rawSpec.City, rawSpec.Month, rawSpec.Day, dl.config.GetCityNames())
	if err != nil {
		log.Error(dl.getLogMessage("Load", rawSpec.City, "invalid filters", err))
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrLoad, err)
	}

	fullDataset, err := dl.LoadCity(spec.City)
	if err != nil {
		return nil, err
	}

	filteredDataset := fullDataset.Filter(spec)
	log.Info(dl.getLogMessage("Load", spec.City, fmt.Sprintf("%v of %v trips match %s", filteredDataset.Len(), fullDataset.Len(), spec), nil))
	return filteredDataset, nil
}

// LoadCity reads every trip of the given city without filtering
func (dl *DataLoader) LoadCity(city string) (*dataset.Dataset, error) {
	cityConfig, ok := dl.config.GetCity(city)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", dataErrors.ErrLoad, dataErrors.ErrUnknownCity, city)
	}

	tripsFilepath := dl.getFilePath(cityConfig.File)
	records, hasDemographics, err := dl.readTrips(tripsFilepath)
	if err != nil {
		log.Error(dl.getLogMessage("LoadCity", city, fmt.Sprintf("error reading %s", tripsFilepath), err))
		return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrLoad, tripsFilepath, err)
	}

	var stations map[string]station.StationData
	if cityConfig.StationsFile != "" {
		stationsFilepath := dl.getFilePath(cityConfig.StationsFile)
		stations, err = readStations(stationsFilepath)
		if err != nil {
			log.Error(dl.getLogMessage("LoadCity", city, fmt.Sprintf("error reading %s", stationsFilepath), err))
			return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrLoad, stationsFilepath, err)
		}
	}

	log.Debug(dl.getLogMessage("LoadCity", city, fmt.Sprintf("%v trips read, demographics: %v, stations: %v", len(records), hasDemographics, len(stations)), nil))
	return dataset.NewDataset(city, records, hasDemographics, stations), nil
}

// getFilePath returns the path to the .csv file. Absolute paths are used as they come
func (dl *DataLoader) getFilePath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dl.config.DataDir, filename)
}

func (dl *DataLoader) readTrips(tripsFilepath string) ([]trip.TripRecord, bool, error) {
	dataFile, err := os.Open(tripsFilepath)
	if err != nil {
		return nil, false, err
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", tripsFilepath, err.Error())
		}
	}(dataFile)

	csvReader := csv.NewReader(dataFile)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, false, fmt.Errorf("error reading header: %w", err)
	}

	columns, err := getTripColumns(header)
	if err != nil {
		return nil, false, err
	}

	var records []trip.TripRecord
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("%w: %w", dataErrors.ErrInvalidTripData, err)
		}

		record, err := dl.getTripRecord(row, columns)
		if err != nil {
			line, _ := csvReader.FieldPos(0)
			return nil, false, fmt.Errorf("line %v: %w", line, err)
		}
		records = append(records, record)
	}

	return records, columns.hasDemographics(), nil
}

func getTripColumns(header []string) (tripColumns, error) {
	indexes := make(map[string]int, len(header))
	for idx, name := range header {
		indexes[strings.TrimSpace(name)] = idx
	}

	for _, column := range requiredColumns {
		if _, ok := indexes[column]; !ok {
			return tripColumns{}, fmt.Errorf("%w: %s", dataErrors.ErrMissingColumn, column)
		}
	}

	columns := tripColumns{
		StartTime:    indexes[startTimeColumn],
		EndTime:      indexes[endTimeColumn],
		Duration:     indexes[durationColumn],
		StartStation: indexes[startStationColumn],
		EndStation:   indexes[endStationColumn],
		UserType:     indexes[userTypeColumn],
		Gender:       -1,
		BirthYear:    -1,
	}
	if idx, ok := indexes[genderColumn]; ok {
		columns.Gender = idx
	}
	if idx, ok := indexes[birthYearColumn]; ok {
		columns.BirthYear = idx
	}
	return columns, nil
}

func (dl *DataLoader) getTripRecord(row []string, columns tripColumns) (trip.TripRecord, error) {
	startTime, err := time.Parse(dl.config.TimeLayout, strings.TrimSpace(row[columns.StartTime]))
	if err != nil {
		log.Debugf("Invalid start time: %v", row[columns.StartTime])
		return trip.TripRecord{}, fmt.Errorf("%w: start time %q: %w", dataErrors.ErrInvalidDate, row[columns.StartTime], dataErrors.ErrInvalidTripData)
	}

	endTime, err := time.Parse(dl.config.TimeLayout, strings.TrimSpace(row[columns.EndTime]))
	if err != nil {
		log.Debugf("Invalid end time: %v", row[columns.EndTime])
		return trip.TripRecord{}, fmt.Errorf("%w: end time %q: %w", dataErrors.ErrInvalidDate, row[columns.EndTime], dataErrors.ErrInvalidTripData)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(row[columns.Duration]), 64)
	if err != nil {
		log.Debugf("Invalid duration type: %v", row[columns.Duration])
		return trip.TripRecord{}, fmt.Errorf("%w: %q: %w", dataErrors.ErrInvalidDurationType, row[columns.Duration], dataErrors.ErrInvalidTripData)
	}

	record := trip.TripRecord{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: row[columns.StartStation],
		EndStation:   row[columns.EndStation],
		UserType:     strings.TrimSpace(row[columns.UserType]),
	}

	if columns.Gender >= 0 {
		record.Gender = strings.TrimSpace(row[columns.Gender])
	}

	if columns.BirthYear >= 0 {
		birthYear, err := parseBirthYear(row[columns.BirthYear])
		if err != nil {
			log.Debugf("Invalid birth year: %v", row[columns.BirthYear])
			return trip.TripRecord{}, fmt.Errorf("%w: %q: %w", dataErrors.ErrInvalidBirthYear, row[columns.BirthYear], dataErrors.ErrInvalidTripData)
		}
		record.BirthYear = birthYear
	}

	return record, nil
}

// parseBirthYear parses values such as 1992 or 1992.0. A blank cell returns 0
func parseBirthYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	birthYear, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int(birthYear), nil
}
