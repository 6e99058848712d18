package paginator

import (
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// DefaultPageSize amount of raw trips shown per request
const DefaultPageSize = 5

// Page window of the dataset
// + Offset: index of the first record of the page inside the filtered dataset
// + Records: at most page size trips
type Page struct {
	Offset  int               `json:"offset"`
	Records []trip.TripRecord `json:"records"`
}

// Paginator walks a Dataset in fixed-size windows. Each record is served once.
type Paginator struct {
	dataset  *dataset.Dataset
	cursor   int
	pageSize int
}

func NewPaginator(ds *dataset.Dataset, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		dataset:  ds,
		pageSize: pageSize,
	}
}

// HasNext returns true while there are records left to serve
func (p *Paginator) HasNext() bool {
	return p.cursor < p.dataset.Len()
}

// NextPage returns the next window and advances the cursor. Once the dataset is exhausted,
// or if it was empty from the start, ErrNoMoreData is returned and the cursor does not move
func (p *Paginator) NextPage() (Page, error) {
	if !p.HasNext() {
		return Page{}, dataErrors.ErrNoMoreData
	}

	page := Page{
		Offset:  p.cursor,
		Records: p.dataset.Slice(p.cursor, p.cursor+p.pageSize),
	}
	p.cursor += p.pageSize
	return page, nil
}

func (p *Paginator) GetCursor() int {
	return p.cursor
}
