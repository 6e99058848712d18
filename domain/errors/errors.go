package errors

import "errors"

var (
	ErrLoad                = errors.New("error loading dataset")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidStationData  = errors.New("invalid station data")
	ErrMissingColumn       = errors.New("missing required column")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrUnknownCity         = errors.New("unknown city")
	ErrInvalidCity         = errors.New("invalid city")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInvalidDay          = errors.New("invalid day")
	ErrEmptyDataset        = errors.New("dataset has no trips")
	ErrNoMoreData          = errors.New("there is no more raw data to display")
)
