package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// metricsDayFormat is the date layout used for CSV rows and the
// one-record-per-day upsert key.
const metricsDayFormat = "2006-01-02"

// MetricsRecord is one observation of account-level metrics:
// follower count and total stars across public repositories.
type MetricsRecord struct {
	// ID is the record's unique identifier.
	ID string `json:"id"`

	// Date is when the observation was taken.
	Date time.Time `json:"date"`

	// Followers is the follower count at observation time.
	Followers int `json:"followers"`

	// TotalStars is the star total across public repos.
	TotalStars int `json:"total_stars"`
}

// Day returns the observation date formatted as YYYY-MM-DD.
// Records are keyed by day: collecting twice on the same day
// replaces the earlier observation.
func (m *MetricsRecord) Day() string {
	return m.Date.Format(metricsDayFormat)
}

// CSVRow renders the record in the history export format.
func (m *MetricsRecord) CSVRow() []string {
	return []string{m.Day(), strconv.Itoa(m.Followers), strconv.Itoa(m.TotalStars)}
}

// ParseMetricsRow parses a CSV row in the history export format.
func ParseMetricsRow(row []string) (MetricsRecord, error) {
	if len(row) != 3 {
		return MetricsRecord{}, fmt.Errorf("%w: metrics row needs 3 fields, got %d", ErrInvalidInput, len(row))
	}

	date, err := time.Parse(metricsDayFormat, strings.TrimSpace(row[0]))
	if err != nil {
		return MetricsRecord{}, fmt.Errorf("%w: parse date: %v", ErrInvalidInput, err)
	}
	followers, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return MetricsRecord{}, fmt.Errorf("%w: parse followers: %v", ErrInvalidInput, err)
	}
	stars, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return MetricsRecord{}, fmt.Errorf("%w: parse stars: %v", ErrInvalidInput, err)
	}

	return MetricsRecord{Date: date, Followers: followers, TotalStars: stars}, nil
}

// TotalStars sums stargazer counts across public raw records,
// mirroring what the listing API exposes for an account page.
func TotalStars(raw []RawRepo) int {
	total := 0
	for _, r := range raw {
		if r.Private {
			continue
		}
		total += r.Stars
	}
	return total
}
