package timehandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

const (
	queryID     = "1"
	handlerType = "time-handler"
	title       = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent start times of the trips
type TimeStats struct {
	Month   time.Month
	Weekday string
	Hour    int
}

type TimeHandler struct{}

func NewTimeHandler() *TimeHandler {
	return &TimeHandler{}
}

func (th *TimeHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (th *TimeHandler) GetQueryID() string {
	return queryID
}

func (th *TimeHandler) GetType() string {
	return handlerType
}

// ComputeTimeStats returns the most common month, weekday and start hour.
// On ties the value of the earliest trip wins
func ComputeTimeStats(ds *dataset.Dataset) (TimeStats, error) {
	if ds.IsEmpty() {
		return TimeStats{}, dataErrors.ErrEmptyDataset
	}

	months := modecounter.NewModeCounter[time.Month]()
	weekdays := modecounter.NewModeCounter[string]()
	hours := modecounter.NewModeCounter[int]()
	for _, record := range ds.Records() {
		months.UpdateCounter(record.StartTime.Month())
		weekdays.UpdateCounter(record.GetWeekday())
		hours.UpdateCounter(record.StartTime.Hour())
	}

	// the counters cannot be empty here, the dataset has at least one trip
	month, _ := months.Mode()
	weekday, _ := weekdays.Mode()
	hour, _ := hours.Mode()

	return TimeStats{Month: month, Weekday: weekday, Hour: hour}, nil
}

// GenerateResponse computes the time stats of the dataset and formats them
func (th *TimeHandler) GenerateResponse(ds *dataset.Dataset) (*queryresponse.QueryResponse, error) {
	stats, err := ComputeTimeStats(ds)
	if err != nil {
		log.Debug(th.getLogMessage("GenerateResponse", "error computing time stats", err))
		return nil, err
	}

	response := queryresponse.NewQueryResponse(queryID, handlerType, title)
	response.AddLine(fmt.Sprintf("The most common month is %s", stats.Month))
	response.AddLine(fmt.Sprintf("The most common day of week is %s", stats.Weekday))
	response.AddLine(fmt.Sprintf("The most common start hour is %v", stats.Hour))

	log.Debug(th.getLogMessage("GenerateResponse", "response generated", nil))
	return response, nil
}
