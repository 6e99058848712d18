package queryresponse

import (
	"strings"
	"time"
)

// QueryResponse contains the formatted result of a query handler
// + QueryID: ID of the query that generated the response
// + Sender: type of the handler that generated the response
// + Title: header printed before the lines
// + Lines: formatted result, one statistic per line
// + Elapsed: time spent generating the response
type QueryResponse struct {
	QueryID string        `json:"query_id"`
	Sender  string        `json:"sender"`
	Title   string        `json:"title"`
	Lines   []string      `json:"lines"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

func NewQueryResponse(queryID string, sender string, title string) *QueryResponse {
	return &QueryResponse{
		QueryID: queryID,
		Sender:  sender,
		Title:   title,
	}
}

func (qr *QueryResponse) AddLine(line string) {
	qr.Lines = append(qr.Lines, line)
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

// String returns the lines joined by new lines
func (qr *QueryResponse) String() string {
	return strings.Join(qr.Lines, "\n")
}
