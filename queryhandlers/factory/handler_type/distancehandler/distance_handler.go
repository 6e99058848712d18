package distancehandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

const (
	queryID     = "5"
	handlerType = "distance-handler"
	title       = "Calculating Trip Distance..."

	NoCoordinatesMessage = "There is no station coordinate data for this city"
)

type DistanceHandler struct{}

func NewDistanceHandler() *DistanceHandler {
	return &DistanceHandler{}
}

func (dh *DistanceHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (dh *DistanceHandler) GetQueryID() string {
	return queryID
}

func (dh *DistanceHandler) GetType() string {
	return handlerType
}

// ComputeDistances accumulates the straight-line distance of every trip whose start and end
// stations are in the station catalog of the dataset
func ComputeDistances(ds *dataset.Dataset) (*distanceaccumulator.DistanceAccumulator, error) {
	if ds.IsEmpty() {
		return nil, dataErrors.ErrEmptyDataset
	}

	accumulator := distanceaccumulator.NewDistanceAccumulator()
	for _, record := range ds.Records() {
		startStation, okStart := ds.GetStation(record.StartStation)
		endStation, okEnd := ds.GetStation(record.EndStation)
		if !okStart || !okEnd {
			accumulator.Skip()
			continue
		}
		accumulator.UpdateAccumulator(distanceaccumulator.CalculateDistance(startStation, endStation))
	}
	return accumulator, nil
}

func (dh *DistanceHandler) GenerateResponse(ds *dataset.Dataset) (*queryresponse.QueryResponse, error) {
	if ds.IsEmpty() {
		return nil, dataErrors.ErrEmptyDataset
	}

	response := queryresponse.NewQueryResponse(queryID, handlerType, title)
	if !ds.HasStations() {
		response.AddLine(NoCoordinatesMessage)
		return response, nil
	}

	accumulator, err := ComputeDistances(ds)
	if err != nil {
		log.Debug(dh.getLogMessage("GenerateResponse", "error computing distances", err))
		return nil, err
	}

	averageDistance, err := accumulator.GetAverageDistance()
	if err != nil {
		// no trip has both stations in the catalog
		response.AddLine(NoCoordinatesMessage)
		return response, nil
	}

	response.AddLine(fmt.Sprintf("Mean straight-line trip distance is %.2f km over %v trips", averageDistance, accumulator.Counter))
	response.AddLine(fmt.Sprintf("Longest straight-line trip distance is %.2f km", accumulator.MaxDistance))
	if accumulator.Skipped > 0 {
		response.AddLine(fmt.Sprintf("%v trips were skipped because a station has no coordinates", accumulator.Skipped))
	}

	log.Debug(dh.getLogMessage("GenerateResponse", "response generated", nil))
	return response, nil
}
