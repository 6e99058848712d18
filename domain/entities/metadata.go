package entities

// Metadata this struct contains extra information about the data that leaves the application
// + RunID: ID of the analysis run that produced the data
// + City: city which belongs the data
// + Type: this field helps consumers to recognize what type of data is
// + Stage: component where the Metadata was constructed
// + Message: message with extra information, e.g. the applied filters
type Metadata struct {
	RunID   string `json:"run_id"`
	City    string `json:"city"`
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func NewMetadata(runID string, city string, dataType string, stage string, message string) Metadata {
	return Metadata{
		RunID:   runID,
		City:    city,
		Type:    dataType,
		Stage:   stage,
		Message: message,
	}
}

func (m Metadata) GetRunID() string {
	return m.RunID
}
