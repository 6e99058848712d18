package userhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

const (
	queryID     = "4"
	handlerType = "user-handler"
	title       = "Calculating User Stats..."

	NoDemographicsMessage = "There is no Gender / Birth year data in the dataset"
)

// BirthYearStats extrema and mode of the rider birth years
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats counts of riders by category.
// + Genders and BirthYears are only set when HasDemographics is true
// + BirthYears is nil if every birth year cell was blank
type UserStats struct {
	UserTypes       []modecounter.ValueCount[string]
	HasDemographics bool
	Genders         []modecounter.ValueCount[string]
	BirthYears      *BirthYearStats
}

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (uh *UserHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (uh *UserHandler) GetQueryID() string {
	return queryID
}

func (uh *UserHandler) GetType() string {
	return handlerType
}

// ComputeUserStats counts user types and, if the dataset exposes demographic columns,
// genders and birth years. Blank cells are not counted
func ComputeUserStats(ds *dataset.Dataset) (UserStats, error) {
	if ds.IsEmpty() {
		return UserStats{}, dataErrors.ErrEmptyDataset
	}

	userTypes := modecounter.NewModeCounter[string]()
	genders := modecounter.NewModeCounter[string]()
	birthYears := modecounter.NewModeCounter[int]()
	earliest, mostRecent := 0, 0

	for _, record := range ds.Records() {
		if record.UserType != "" {
			userTypes.UpdateCounter(record.UserType)
		}

		if !ds.HasDemographics {
			continue
		}

		if record.Gender != "" {
			genders.UpdateCounter(record.Gender)
		}

		if record.HasBirthYear() {
			if birthYears.IsEmpty() || record.BirthYear < earliest {
				earliest = record.BirthYear
			}
			if birthYears.IsEmpty() || record.BirthYear > mostRecent {
				mostRecent = record.BirthYear
			}
			birthYears.UpdateCounter(record.BirthYear)
		}
	}

	stats := UserStats{
		UserTypes:       userTypes.ValueCounts(),
		HasDemographics: ds.HasDemographics,
	}
	if !ds.HasDemographics {
		return stats, nil
	}

	stats.Genders = genders.ValueCounts()
	if mostCommon, err := birthYears.Mode(); err == nil {
		stats.BirthYears = &BirthYearStats{
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: mostCommon,
		}
	}
	return stats, nil
}

func (uh *UserHandler) GenerateResponse(ds *dataset.Dataset) (*queryresponse.QueryResponse, error) {
	stats, err := ComputeUserStats(ds)
	if err != nil {
		log.Debug(uh.getLogMessage("GenerateResponse", "error computing user stats", err))
		return nil, err
	}

	response := queryresponse.NewQueryResponse(queryID, handlerType, title)
	response.AddLine("Count for user types")
	for _, userType := range stats.UserTypes {
		response.AddLine(fmt.Sprintf("  %s: %v", userType.Value, userType.Count))
	}

	if !stats.HasDemographics {
		log.Info(uh.getLogMessage("GenerateResponse", fmt.Sprintf("city %s has no demographic columns", ds.City), nil))
		response.AddLine(NoDemographicsMessage)
		return response, nil
	}

	response.AddLine("Count for Gender")
	for _, gender := range stats.Genders {
		response.AddLine(fmt.Sprintf("  %s: %v", gender.Value, gender.Count))
	}

	if stats.BirthYears == nil {
		response.AddLine(NoDemographicsMessage)
		return response, nil
	}

	response.AddLine(fmt.Sprintf("Earliest birth year is %v", stats.BirthYears.Earliest))
	response.AddLine(fmt.Sprintf("Most recent birth year is %v", stats.BirthYears.MostRecent))
	response.AddLine(fmt.Sprintf("Most common birth year is %v", stats.BirthYears.MostCommon))

	log.Debug(uh.getLogMessage("GenerateResponse", "response generated", nil))
	return response, nil
}
