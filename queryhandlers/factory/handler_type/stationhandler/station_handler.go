package stationhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

const (
	queryID     = "2"
	handlerType = "station-handler"
	title       = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations and route
// + Route: formatted as "<start> to <end>"
type StationStats struct {
	StartStation string
	EndStation   string
	Route        string
}

type StationHandler struct{}

func NewStationHandler() *StationHandler {
	return &StationHandler{}
}

func (sh *StationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (sh *StationHandler) GetQueryID() string {
	return queryID
}

func (sh *StationHandler) GetType() string {
	return handlerType
}

// ComputeStationStats returns the most used start station, end station and route.
// Fails with ErrEmptyDataset if there is no trip to count
func ComputeStationStats(ds *dataset.Dataset) (StationStats, error) {
	if ds.IsEmpty() {
		return StationStats{}, dataErrors.ErrEmptyDataset
	}

	startStations := modecounter.NewModeCounter[string]()
	endStations := modecounter.NewModeCounter[string]()
	routes := modecounter.NewModeCounter[string]()
	for _, record := range ds.Records() {
		startStations.UpdateCounter(record.StartStation)
		endStations.UpdateCounter(record.EndStation)
		routes.UpdateCounter(record.GetRoute())
	}

	startStation, _ := startStations.Mode()
	endStation, _ := endStations.Mode()
	route, _ := routes.Mode()

	return StationStats{StartStation: startStation, EndStation: endStation, Route: route}, nil
}

func (sh *StationHandler) GenerateResponse(ds *dataset.Dataset) (*queryresponse.QueryResponse, error) {
	stats, err := ComputeStationStats(ds)
	if err != nil {
		log.Debug(sh.getLogMessage("GenerateResponse", "error computing station stats", err))
		return nil, err
	}

	response := queryresponse.NewQueryResponse(queryID, handlerType, title)
	response.AddLine(fmt.Sprintf("The most commonly used start station is %s", stats.StartStation))
	response.AddLine(fmt.Sprintf("The most commonly used end station is %s", stats.EndStation))
	response.AddLine(fmt.Sprintf("The most frequent combination of start station and end station trip is %s", stats.Route))

	log.Debug(sh.getLogMessage("GenerateResponse", "response generated", nil))
	return response, nil
}
