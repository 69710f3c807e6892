package analytics

import (
	"sort"

	"github.com/officerhub/report-management-api/internal/models"
)

// Granularity selects the bucketing period for volume trends.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// Bucket is one period's report count. Period is "2006-01-02" for daily and
// weekly buckets (the week's Monday) and "2006-01" for monthly buckets.
type Bucket struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// Volume groups reports by their report date at the given granularity and
// returns the buckets in chronological order. Reports without a date are
// ignored.
func Volume(reports []models.Report, g Granularity) []Bucket {
	counts := map[string]int{}
	for i := range reports {
		r := &reports[i]
		if r.Date.IsZero() {
			continue
		}
		counts[bucketKey(r.Date, g)]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for period, count := range counts {
		buckets = append(buckets, Bucket{Period: period, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Period < buckets[j].Period })
	return buckets
}

func bucketKey(d models.Date, g Granularity) string {
	switch g {
	case GranularityWeekly:
		return weekStart(d).String()
	case GranularityMonthly:
		return d.Format("2006-01")
	default:
		return d.String()
	}
}

// weekStart returns the Monday of the week containing d.
func weekStart(d models.Date) models.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return models.DateOf(d.AddDate(0, 0, -offset))
}
