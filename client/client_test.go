package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/config"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

type fakeLoader struct {
	dataset *dataset.Dataset
	err     error
	specs   []filter.FilterSpec
}

func (f *fakeLoader) Load(spec filter.FilterSpec) (*dataset.Dataset, error) {
	f.specs = append(f.specs, spec)
	if f.err != nil {
		return nil, f.err
	}
	return f.dataset.Filter(spec), nil
}

type fakePublisher struct {
	reports []*report.Report
}

func (f *fakePublisher) Publish(ctx context.Context, analysisReport *report.Report) error {
	f.reports = append(f.reports, analysisReport)
	return nil
}

func newTestConfig() *config.AppConfig {
	return &config.AppConfig{
		PageSize: 5,
		Data: config.DataConfig{
			Cities: []config.CityConfig{
				{Name: "chicago", File: "chicago.csv"},
				{Name: "new york city", File: "new_york_city.csv"},
				{Name: "washington", File: "washington.csv"},
			},
		},
	}
}

func newTestDataset(size int) *dataset.Dataset {
	start := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	records := make([]trip.TripRecord, size)
	for i := range records {
		records[i] = trip.TripRecord{
			StartTime:    start.Add(time.Duration(i) * time.Hour),
			EndTime:      start.Add(time.Duration(i)*time.Hour + 10*time.Minute),
			Duration:     600,
			StartStation: fmt.Sprintf("Station %d", i),
			EndStation:   "Clark St",
			UserType:     "Subscriber",
		}
	}
	return dataset.NewDataset("washington", records, false, nil)
}

func runClient(t *testing.T, loader *fakeLoader, publisher reportPublisher, answers ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	client := NewClient(newTestConfig(), loader, in, &out, publisher)
	err := client.Run(context.Background())
	return out.String(), err
}

func TestRunRepromptsInvalidAnswers(t *testing.T) {
	loader := &fakeLoader{dataset: newTestDataset(3)}

	output, err := runClient(t, loader, nil, "boston", "Washington", "july", "JANUARY", "someday", "all", "no", "no")
	require.NoError(t, err)

	require.Len(t, loader.specs, 1)
	assert.Equal(t, filter.FilterSpec{City: "washington", Month: "january", Day: "all"}, loader.specs[0])
	assert.Contains(t, output, "The name of the city is invalid")
	assert.Contains(t, output, "The month is invalid")
	assert.Contains(t, output, "The day is invalid")
}

func TestRunPrintsStats(t *testing.T) {
	output, err := runClient(t, &fakeLoader{dataset: newTestDataset(3)}, nil, "washington", "all", "all", "no", "no")
	require.NoError(t, err)

	assert.Contains(t, output, "The most common month is January")
	assert.Contains(t, output, "The most commonly used end station is Clark St")
	assert.Contains(t, output, "Total travel time in seconds is 1800 s")
	assert.Contains(t, output, "Mean travel time in seconds is 600.00 s")
	assert.Contains(t, output, "There is no Gender / Birth year data in the dataset")
	assert.Contains(t, output, "There is no station coordinate data for this city")
	assert.Contains(t, output, "This took")
}

func TestRunDisplaysRawDataUntilExhausted(t *testing.T) {
	output, err := runClient(t, &fakeLoader{dataset: newTestDataset(7)}, nil, "washington", "all", "all", "yes", "yes", "no")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(output, "Do you want to see next 5 lines of raw data?"))
	assert.Contains(t, output, " 5 rows of raw data ")
	assert.Contains(t, output, " 2 rows of raw data ")
	assert.Contains(t, output, "Station 6")
	assert.Contains(t, output, dataErrors.ErrNoMoreData.Error())
}

func TestRunStopsRawDataOnNo(t *testing.T) {
	output, err := runClient(t, &fakeLoader{dataset: newTestDataset(7)}, nil, "washington", "all", "all", "yes", "no", "no")
	require.NoError(t, err)

	assert.Contains(t, output, "Station 4")
	assert.NotContains(t, output, "Station 5")
	assert.NotContains(t, output, dataErrors.ErrNoMoreData.Error())
}

func TestRunWithEmptyFilteredDataset(t *testing.T) {
	// every trip starts in January
	output, err := runClient(t, &fakeLoader{dataset: newTestDataset(3)}, nil, "washington", "june", "all", "no")
	require.NoError(t, err)

	assert.Contains(t, output, dataErrors.ErrNoMoreData.Error())
	assert.Contains(t, output, "No trips match the selected filters")
	assert.NotContains(t, output, "The most common month")
}

func TestRunRestartsOnYes(t *testing.T) {
	loader := &fakeLoader{dataset: newTestDataset(2)}
	publisher := &fakePublisher{}

	_, err := runClient(t, loader, publisher,
		"washington", "all", "all", "no", "yes",
		"chicago", "january", "monday", "no", "nope",
	)
	require.NoError(t, err)

	require.Len(t, loader.specs, 2)
	assert.Equal(t, "chicago", loader.specs[1].City)
	require.Len(t, publisher.reports, 2)
	assert.Equal(t, "washington", publisher.reports[0].Metadata.City)
	assert.Len(t, publisher.reports[0].Responses, 5)
	assert.NotEqual(t, publisher.reports[0].Metadata.RunID, publisher.reports[1].Metadata.RunID)
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	loader := &fakeLoader{dataset: newTestDataset(2)}
	_, err := runClient(t, loader, nil, "washington", "all")
	require.NoError(t, err)
	assert.Empty(t, loader.specs)
}

func TestRunReturnsLoadError(t *testing.T) {
	loadErr := fmt.Errorf("%w: washington.csv: %w", dataErrors.ErrLoad, errors.New("no such file"))
	_, err := runClient(t, &fakeLoader{err: loadErr}, nil, "washington", "all", "all")
	assert.ErrorIs(t, err, dataErrors.ErrLoad)
}

func TestRunStopsWhenContextIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &fakeLoader{dataset: newTestDataset(2)}
	client := NewClient(newTestConfig(), loader, strings.NewReader("washington\nall\nall\n"), &bytes.Buffer{}, nil)
	require.NoError(t, client.Run(ctx))
	assert.Empty(t, loader.specs)
}

func TestRunStopsWhenContextIsCanceledDuringPrompt(t *testing.T) {
	// the pipe never delivers a line until something is written to it, like an idle terminal
	stdin, stdinWriter := io.Pipe()
	defer func() {
		_ = stdinWriter.Close()
	}()

	loader := &fakeLoader{dataset: newTestDataset(2)}
	client := NewClient(newTestConfig(), loader, stdin, io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- client.Run(ctx)
	}()

	_, err := io.WriteString(stdinWriter, "washington\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still waiting for an answer after the context was canceled")
	}
	assert.Empty(t, loader.specs)
}
