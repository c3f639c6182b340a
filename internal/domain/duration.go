package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DurationInfo contains flight duration information.
type DurationInfo struct {
	// TotalMinutes is the total flight duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

// isoDurationRegex matches the day/time subset of ISO-8601 durations used for
// itineraries, e.g. "PT5H30M", "P1DT2H", "PT45M".
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+S)?)?$`)

// ParseISODuration converts an itinerary duration into a DurationInfo.
// Seconds are dropped.
func ParseISODuration(s string) (DurationInfo, error) {
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return DurationInfo{}, fmt.Errorf("unsupported duration %q", s)
	}

	var parts [3]int
	for i, v := range m[1:4] {
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return DurationInfo{}, fmt.Errorf("duration %q: %w", s, err)
		}
		parts[i] = int(n)
	}

	minutes := int64(parts[0])*24*60 + int64(parts[1])*60 + int64(parts[2])
	if minutes > math.MaxInt32 {
		return DurationInfo{}, fmt.Errorf("duration %q out of range", s)
	}
	return NewDurationInfo(int(minutes)), nil
}
