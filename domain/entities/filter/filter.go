package filter

import (
	"fmt"
	"strings"
	"time"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All is the value that disables a month or day filter
const All = "all"

var (
	Months = []string{"january", "february", "march", "april", "may", "june"}
	Days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// FilterSpec contains the constraints selected by the user before the analysis
// + City: name of the city to analyze, one of the configured cities
// + Month: january to june, or all
// + Day: monday to sunday, or all
type FilterSpec struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// Normalize lower-cases and trims a raw user answer
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ParseCity returns the normalized city if it belongs to validCities
func ParseCity(value string, validCities []string) (string, error) {
	city := Normalize(value)
	if !utils.ContainsString(city, validCities) {
		return "", fmt.Errorf("%w: %q", dataErrors.ErrInvalidCity, value)
	}
	return city, nil
}

// ParseMonth returns the normalized month if it is all or a month between january and june
func ParseMonth(value string) (string, error) {
	month := Normalize(value)
	if month != All && !utils.ContainsString(month, Months) {
		return "", fmt.Errorf("%w: %q", dataErrors.ErrInvalidMonth, value)
	}
	return month, nil
}

// ParseDay returns the normalized day if it is all or a weekday name
func ParseDay(value string) (string, error) {
	day := Normalize(value)
	if day != All && !utils.ContainsString(day, Days) {
		return "", fmt.Errorf("%w: %q", dataErrors.ErrInvalidDay, value)
	}
	return day, nil
}

// ParseFilterSpec validates the three raw values and returns a normalized FilterSpec
func ParseFilterSpec(city string, month string, day string, validCities []string) (FilterSpec, error) {
	parsedCity, err := ParseCity(city, validCities)
	if err != nil {
		return FilterSpec{}, err
	}

	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return FilterSpec{}, err
	}

	parsedDay, err := ParseDay(day)
	if err != nil {
		return FilterSpec{}, err
	}

	return FilterSpec{City: parsedCity, Month: parsedMonth, Day: parsedDay}, nil
}

// GetMonthNumber returns the month ordinal (january = 1). Returns 0 when the month filter is all
func (fs FilterSpec) GetMonthNumber() time.Month {
	return time.Month(utils.IndexOfString(Normalize(fs.Month), Months) + 1)
}

// GetWeekdayName returns the requested day capitalized like time.Weekday names, e.g. Monday.
// Returns an empty string when the day filter is all
func (fs FilterSpec) GetWeekdayName() string {
	if !fs.FilterByDay() {
		return ""
	}
	day := Normalize(fs.Day)
	return strings.ToUpper(day[:1]) + day[1:]
}

func (fs FilterSpec) FilterByMonth() bool {
	month := Normalize(fs.Month)
	return month != "" && month != All
}

func (fs FilterSpec) FilterByDay() bool {
	day := Normalize(fs.Day)
	return day != "" && day != All
}

func (fs FilterSpec) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", fs.City, fs.Month, fs.Day)
}
