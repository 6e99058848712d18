package durationhandler

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

const (
	queryID     = "3"
	handlerType = "duration-handler"
	title       = "Calculating Trip Duration..."
)

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	TotalDuration float64
	MeanDuration  float64
}

type DurationHandler struct{}

func NewDurationHandler() *DurationHandler {
	return &DurationHandler{}
}

func (dh *DurationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (dh *DurationHandler) GetQueryID() string {
	return queryID
}

func (dh *DurationHandler) GetType() string {
	return handlerType
}

func ComputeDurationStats(ds *dataset.Dataset) (DurationStats, error) {
	if ds.IsEmpty() {
		return DurationStats{}, dataErrors.ErrEmptyDataset
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range ds.Records() {
		accumulator.UpdateAccumulator(record.Duration)
	}

	meanDuration, err := accumulator.GetAverageDuration()
	if err != nil {
		return DurationStats{}, err
	}

	return DurationStats{TotalDuration: accumulator.TotalDuration, MeanDuration: meanDuration}, nil
}

func (dh *DurationHandler) GenerateResponse(ds *dataset.Dataset) (*queryresponse.QueryResponse, error) {
	stats, err := ComputeDurationStats(ds)
	if err != nil {
		log.Debug(dh.getLogMessage("GenerateResponse", "error computing duration stats", err))
		return nil, err
	}

	response := queryresponse.NewQueryResponse(queryID, handlerType, title)
	response.AddLine(fmt.Sprintf("Total travel time in seconds is %s s", strconv.FormatFloat(stats.TotalDuration, 'f', -1, 64)))
	response.AddLine(fmt.Sprintf("Mean travel time in seconds is %.2f s", stats.MeanDuration))

	log.Debug(dh.getLogMessage("GenerateResponse", "response generated", nil))
	return response, nil
}
