package report

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/filter"
)

func TestNewRunIDIsUUID(t *testing.T) {
	_, err := uuid.Parse(NewRunID())
	require.NoError(t, err)
	assert.NotEqual(t, NewRunID(), NewRunID())
}

func TestReportMarshal(t *testing.T) {
	spec := filter.FilterSpec{City: "washington", Month: "june", Day: filter.All}
	response := queryresponse.NewQueryResponse("3", "duration-handler", "Calculating Trip Duration...")
	response.AddLine("Total travel time in seconds is 60 s")

	analysisReport := NewReport("run-1", spec, 3, []*queryresponse.QueryResponse{response})
	reportBytes, err := analysisReport.Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(reportBytes, &decoded))

	metadata := decoded["metadata"].(map[string]any)
	assert.Equal(t, "run-1", metadata["run_id"])
	assert.Equal(t, "washington", metadata["city"])
	assert.Equal(t, "report", metadata["type"])
	assert.Equal(t, "city: washington, month: june, day: all", metadata["message"])
	assert.Equal(t, float64(3), decoded["total_trips"])
	assert.Len(t, decoded["responses"], 1)
}
