package cmd

import (
	"fmt"
	"strconv"
)

// The imported dataset covers these years.
const (
	minYear = 1998
	maxYear = 2020
)

// parseYearRange parses two year arguments, enforcing the dataset coverage.
// A reversed range is swapped (swapped reports this so the caller can note
// it); equal years are rejected since a one-year range has no trend to show.
func parseYearRange(args []string) (start, end int, swapped bool, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("expected a start and end year")
		return
	}

	start, err = parseYear(args[0])
	if err != nil {
		return
	}
	end, err = parseYear(args[1])
	if err != nil {
		return
	}

	if start == end {
		err = fmt.Errorf("start and end year cannot both be %d", start)
		return
	}
	if start > end {
		start, end = end, start
		swapped = true
	}
	return
}

func parseYear(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("year %q is not an integer", arg)
	}
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year %d is outside the dataset coverage (%d-%d)", year, minYear, maxYear)
	}
	return year, nil
}
