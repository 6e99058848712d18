package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

var cities = []string{"chicago", "new york city", "washington"}

func TestParseFilterSpecNormalizesValues(t *testing.T) {
	spec, err := ParseFilterSpec("  New York City ", "MARCH", "Friday", cities)
	require.NoError(t, err)
	assert.Equal(t, FilterSpec{City: "new york city", Month: "march", Day: "friday"}, spec)
}

func TestParseFilterSpecRejectsInvalidValues(t *testing.T) {
	_, err := ParseFilterSpec("boston", "all", "all", cities)
	assert.ErrorIs(t, err, dataErrors.ErrInvalidCity)

	_, err = ParseFilterSpec("chicago", "july", "all", cities)
	assert.ErrorIs(t, err, dataErrors.ErrInvalidMonth)

	_, err = ParseFilterSpec("chicago", "all", "someday", cities)
	assert.ErrorIs(t, err, dataErrors.ErrInvalidDay)
}

func TestGetMonthNumber(t *testing.T) {
	assert.Equal(t, time.January, FilterSpec{Month: "january"}.GetMonthNumber())
	assert.Equal(t, time.June, FilterSpec{Month: "june"}.GetMonthNumber())
	assert.Equal(t, time.March, FilterSpec{Month: " March"}.GetMonthNumber())
	assert.Equal(t, time.Month(0), FilterSpec{Month: All}.GetMonthNumber())
}

func TestGetWeekdayName(t *testing.T) {
	assert.Equal(t, "Monday", FilterSpec{Day: "monday"}.GetWeekdayName())
	assert.Equal(t, "Monday", FilterSpec{Day: "MONDAY"}.GetWeekdayName())
	assert.Equal(t, "", FilterSpec{Day: All}.GetWeekdayName())
	assert.Equal(t, "", FilterSpec{Day: "ALL"}.GetWeekdayName())
	assert.False(t, FilterSpec{Day: All}.FilterByDay())
	assert.True(t, FilterSpec{Month: "may"}.FilterByMonth())
}
