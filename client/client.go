package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/business/paginator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/queryhandlers/factory"
)

const (
	yesAnswer = "yes"
	separator = "----------------------------------------"
)

type datasetLoader interface {
	Load(spec filter.FilterSpec) (*dataset.Dataset, error)
}

type reportPublisher interface {
	Publish(ctx context.Context, analysisReport *report.Report) error
}

// Client drives the interactive session: prompts, load, raw data and stats
type Client struct {
	config    *config.AppConfig
	loader    datasetLoader
	handlers  []factory.Handler
	publisher reportPublisher
	in        io.Reader
	answers   chan string
	readOnce  sync.Once
	out       io.Writer
}

// NewClient returns a Client reading answers from in and writing the report to out.
// publisher can be nil, in which case reports are only printed
func NewClient(appConfig *config.AppConfig, loader datasetLoader, in io.Reader, out io.Writer, publisher reportPublisher) *Client {
	return &Client{
		config:    appConfig,
		loader:    loader,
		handlers:  factory.NewQueryHandlers(),
		publisher: publisher,
		in:        in,
		answers:   make(chan string),
		out:       out,
	}
}

// Run repeats analysis sessions until the user does not answer yes to restart, the input ends
// or ctx is canceled. A dataset that cannot be loaded ends the run with an error
func (c *Client) Run(ctx context.Context) error {
	for {
		spec, ok := c.getFilters(ctx)
		if !ok {
			return nil
		}

		ds, err := c.loader.Load(spec)
		if err != nil {
			return err
		}

		runID := report.NewRunID()
		log.Infof("[client][runID: %s][status: OK] %v trips loaded for %s", runID, ds.Len(), spec)

		if !c.displayRaw(ctx, ds) {
			return nil
		}

		responses := c.runQueries(ds)
		c.publishReport(ctx, report.NewReport(runID, spec, ds.Len(), responses))

		answer, ok := c.ask(ctx, "\nWould you like to restart? Enter yes or no.\n")
		if !ok || answer != yesAnswer {
			return nil
		}
	}
}

// getFilters asks for city, month and day until each answer is valid.
// Returns false if the input ended before the three answers were given
func (c *Client) getFilters(ctx context.Context) (filter.FilterSpec, bool) {
	c.println("Hello! Let's explore some US bikeshare data!")
	cityNames := c.config.Data.GetCityNames()

	city, ok := c.askUntilValid(ctx,
		fmt.Sprintf("Please enter the name of the city to analyze (%s): ", strings.Join(cityNames, ", ")),
		fmt.Sprintf("The name of the city is invalid, please re-enter (%s): ", strings.Join(cityNames, ", ")),
		func(answer string) (string, error) { return filter.ParseCity(answer, cityNames) },
	)
	if !ok {
		return filter.FilterSpec{}, false
	}

	month, ok := c.askUntilValid(ctx,
		"Please enter the month to analyze ('january' to 'june', or 'all'): ",
		"The month is invalid, please re-enter ('january' to 'june', or 'all'): ",
		filter.ParseMonth,
	)
	if !ok {
		return filter.FilterSpec{}, false
	}

	day, ok := c.askUntilValid(ctx,
		"Please enter the day to analyze ('monday' to 'sunday', or 'all'): ",
		"The day is invalid, please re-enter ('monday' to 'sunday', or 'all'): ",
		filter.ParseDay,
	)
	if !ok {
		return filter.FilterSpec{}, false
	}

	c.println(separator)
	return filter.FilterSpec{City: city, Month: month, Day: day}, true
}

func (c *Client) askUntilValid(ctx context.Context, prompt string, retryPrompt string, parse func(string) (string, error)) (string, bool) {
	answer, ok := c.ask(ctx, prompt)
	for ok {
		value, err := parse(answer)
		if err == nil {
			return value, true
		}
		log.Debugf("[client][method: askUntilValid] %s", err.Error())
		answer, ok = c.ask(ctx, retryPrompt)
	}
	return "", false
}

// ask prints the prompt and returns the normalized answer. Returns false if the input
// ended or ctx was canceled, even while the read of the answer is still blocked
func (c *Client) ask(ctx context.Context, prompt string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	_, _ = fmt.Fprint(c.out, prompt)
	c.readOnce.Do(func() {
		go c.readAnswers()
	})

	select {
	case <-ctx.Done():
		log.Debug("[client][method: ask] context canceled while waiting for an answer")
		return "", false
	case answer, ok := <-c.answers:
		if !ok {
			return "", false
		}
		return filter.Normalize(answer), true
	}
}

// readAnswers sends every input line to the answers channel and closes it when the input ends
func (c *Client) readAnswers() {
	defer close(c.answers)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.answers <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		log.Debugf("[client][method: readAnswers] error reading answer: %s", err.Error())
	}
}

// displayRaw shows pages of raw trips while the user answers yes.
// Returns false if the input ended or ctx was canceled
func (c *Client) displayRaw(ctx context.Context, ds *dataset.Dataset) bool {
	rawPaginator := paginator.NewPaginator(ds, c.config.PageSize)
	for {
		if !rawPaginator.HasNext() {
			c.println(dataErrors.ErrNoMoreData.Error())
			return true
		}

		answer, ok := c.ask(ctx, fmt.Sprintf("Do you want to see next %v lines of raw data? (yes/no) ", c.config.PageSize))
		if !ok {
			return false
		}
		if answer != yesAnswer {
			return true
		}

		page, err := rawPaginator.NextPage()
		if errors.Is(err, dataErrors.ErrNoMoreData) {
			continue
		}
		c.println(fmt.Sprintf("\n %v rows of raw data \n", len(page.Records)))
		if err := writePage(c.out, page, ds.HasDemographics); err != nil {
			log.Errorf("[client][method: displayRaw][status: ERROR] error writing raw data: %s", err.Error())
		}
	}
}

// runQueries prints every handler response and returns them in report order
func (c *Client) runQueries(ds *dataset.Dataset) []*queryresponse.QueryResponse {
	if ds.IsEmpty() {
		c.println("\nNo trips match the selected filters, there are no stats to display")
		c.println(separator)
		return nil
	}

	var responses []*queryresponse.QueryResponse
	for _, handler := range c.handlers {
		start := time.Now()
		response, err := handler.GenerateResponse(ds)
		if err != nil {
			log.Errorf("[client][handler: %s][status: ERROR] %s", handler.GetType(), err.Error())
			continue
		}
		response.Elapsed = time.Since(start)

		c.println("\n" + response.Title + "\n")
		c.println(response.String())
		c.println(fmt.Sprintf("\nThis took %v seconds.", response.Elapsed.Seconds()))
		c.println(separator)
		responses = append(responses, response)
	}
	return responses
}

func (c *Client) publishReport(ctx context.Context, analysisReport *report.Report) {
	if c.publisher == nil {
		return
	}

	err := c.publisher.Publish(ctx, analysisReport)
	if err != nil {
		log.Errorf("[client][runID: %s][status: ERROR] %s", analysisReport.GetMetadata().GetRunID(), err.Error())
	}
}

func (c *Client) println(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}
