package services

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is the effective reporting window, both ends inclusive
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Inverted reports whether the window ends before it starts
func (r DateRange) Inverted() bool {
	return r.Start.After(r.End)
}

const dateOnlyLayout = "2006-01-02"

// Layouts without an explicit offset are read in the report location
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ResolveDateRange computes the reporting window from the optional query
// values: end defaults to now and start defaults to end minus window.
// An inverted window is returned as is.
func ResolveDateRange(startRaw, endRaw string, now time.Time, window time.Duration, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	end := now
	if strings.TrimSpace(endRaw) != "" {
		t, err := parseReportDate(endRaw, loc, true)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: invalid endDate %q", ErrMalformedInput, endRaw)
		}
		end = t
	}

	start := end.Add(-window)
	if strings.TrimSpace(startRaw) != "" {
		t, err := parseReportDate(startRaw, loc, false)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: invalid startDate %q", ErrMalformedInput, startRaw)
		}
		start = t
	}

	return DateRange{Start: start, End: end}, nil
}

// parseReportDate accepts RFC 3339 timestamps, offset-less date-times and
// plain dates. A plain date used as an upper bound covers the whole day.
func parseReportDate(raw string, loc *time.Location, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(dateOnlyLayout, raw, loc); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}

	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
