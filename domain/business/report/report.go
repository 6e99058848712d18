package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
)

const (
	reportType  = "report"
	reportStage = "client"
)

// Report envelope with every query response of an analysis run
type Report struct {
	Metadata    entities.Metadata              `json:"metadata"`
	Filter      filter.FilterSpec              `json:"filter"`
	TotalTrips  int                            `json:"total_trips"`
	GeneratedAt time.Time                      `json:"generated_at"`
	Responses   []*queryresponse.QueryResponse `json:"responses"`
}

// NewRunID returns a new random ID for an analysis run
func NewRunID() string {
	return uuid.NewString()
}

func NewReport(runID string, spec filter.FilterSpec, totalTrips int, responses []*queryresponse.QueryResponse) *Report {
	return &Report{
		Metadata:    entities.NewMetadata(runID, spec.City, reportType, reportStage, spec.String()),
		Filter:      spec,
		TotalTrips:  totalTrips,
		GeneratedAt: time.Now().UTC(),
		Responses:   responses,
	}
}

func (r *Report) GetMetadata() entities.Metadata {
	return r.Metadata
}

func (r *Report) Marshal() ([]byte, error) {
	reportBytes, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error marshalling report %s: %w", r.Metadata.GetRunID(), err)
	}
	return reportBytes, nil
}
