package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"bikeshare/domain/business/paginator"
)

const rawTimeLayout = "2006-01-02 15:04:05"

// writePage prints the trips of the page as an aligned table indexed by dataset position
func writePage(out io.Writer, page paginator.Page, withDemographics bool) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "\tStart Time\tEnd Time\tTrip Duration\tStart Station\tEnd Station\tUser Type"
	if withDemographics {
		header += "\tGender\tBirth Year"
	}
	if _, err := fmt.Fprintln(writer, header); err != nil {
		return err
	}

	for idx, record := range page.Records {
		line := fmt.Sprintf("%v\t%s\t%s\t%s\t%s\t%s\t%s",
			page.Offset+idx,
			record.StartTime.Format(rawTimeLayout),
			record.EndTime.Format(rawTimeLayout),
			strconv.FormatFloat(record.Duration, 'f', -1, 64),
			record.StartStation,
			record.EndStation,
			record.UserType,
		)
		if withDemographics {
			birthYear := ""
			if record.HasBirthYear() {
				birthYear = strconv.Itoa(record.BirthYear)
			}
			line += fmt.Sprintf("\t%s\t%s", record.Gender, birthYear)
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	return writer.Flush()
}
