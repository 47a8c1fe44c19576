package schedule

import (
	"errors"
	"fmt"
	"math"
)

// Shift times sit on a fixed 15-minute grid from 06:00 to 22:00. The grid is
// an enumerable option set, not free text, so anything off it is rejected.
const (
	clockGridStart = 6 * 60
	clockGridEnd   = 22 * 60
	clockGridStep  = 15
)

var ErrMalformedTime = errors.New("time must be HH:MM on a 15-minute grid between 06:00 and 22:00")

// ParseClock parses an HH:MM grid time into minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrMalformedTime
	}

	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return 0, ErrMalformedTime
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, ErrMalformedTime
	}

	minutes := hh*60 + mm
	if minutes < clockGridStart || minutes > clockGridEnd || minutes%clockGridStep != 0 {
		return 0, ErrMalformedTime
	}

	return minutes, nil
}

// ClockOptions returns every selectable grid time in order.
func ClockOptions() []string {
	options := make([]string, 0, (clockGridEnd-clockGridStart)/clockGridStep+1)
	for m := clockGridStart; m <= clockGridEnd; m += clockGridStep {
		options = append(options, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return options
}

// HoursFor returns the elapsed hours between two grid times, rounded to two
// decimal places. A shift with either side absent is incomplete and counts as
// zero; an end at or before the start also counts as zero here, since
// submission validation rejects such shifts before they reach a total.
func HoursFor(startTime, endTime string) float64 {
	if startTime == "" || endTime == "" {
		return 0
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return 0
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0
	}

	if end <= start {
		return 0
	}

	return math.Round(float64(end-start)/60*100) / 100
}
