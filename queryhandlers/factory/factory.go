package factory

import (
	"fmt"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/dataset"
	"bikeshare/queryhandlers/factory/handler_type/distancehandler"
	"bikeshare/queryhandlers/factory/handler_type/durationhandler"
	"bikeshare/queryhandlers/factory/handler_type/stationhandler"
	"bikeshare/queryhandlers/factory/handler_type/timehandler"
	"bikeshare/queryhandlers/factory/handler_type/userhandler"
)

const (
	timeHandlerType     = "time-handler"
	stationHandlerType  = "station-handler"
	durationHandlerType = "duration-handler"
	userHandlerType     = "user-handler"
	distanceHandlerType = "distance-handler"
)

// reportOrder order in which the handlers are run and printed
var reportOrder = []string{timeHandlerType, stationHandlerType, durationHandlerType, userHandlerType, distanceHandlerType}

type Handler interface {
	GetQueryID() string
	GetType() string
	GenerateResponse(ds *dataset.Dataset) (*queryresponse.QueryResponse, error)
}

// NewQueryHandler initialize a handler of some type.
// Possible handler types are: time-handler, station-handler, duration-handler, user-handler, distance-handler
func NewQueryHandler(handlerType string) (Handler, error) {
	switch handlerType {
	case timeHandlerType:
		return timehandler.NewTimeHandler(), nil
	case stationHandlerType:
		return stationhandler.NewStationHandler(), nil
	case durationHandlerType:
		return durationhandler.NewDurationHandler(), nil
	case userHandlerType:
		return userhandler.NewUserHandler(), nil
	case distanceHandlerType:
		return distancehandler.NewDistanceHandler(), nil
	}

	return nil, fmt.Errorf("[method: NewQueryHandler][status: error] Invalid handler type %s", handlerType)
}

// NewQueryHandlers returns one handler of each type in report order
func NewQueryHandlers() []Handler {
	handlers := make([]Handler, 0, len(reportOrder))
	for _, handlerType := range reportOrder {
		handler, err := NewQueryHandler(handlerType)
		if err != nil {
			panic(err)
		}
		handlers = append(handlers, handler)
	}
	return handlers
}
