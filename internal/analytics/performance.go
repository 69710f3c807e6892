package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/officerhub/report-management-api/internal/constants"
	"github.com/officerhub/report-management-api/internal/models"
)

// Score weights and trend sensitivity for the officer performance model.
const (
	weightOnTime  = 0.4
	weightSameDay = 0.3
	weightPending = 0.3

	trendWindowDays = 30
	trendDelta      = 0.15
)

// OfficerStats is one officer's submission performance.
type OfficerStats struct {
	Officer     string  `json:"officer"`
	Total       int     `json:"total"`
	OnTime      int     `json:"on_time"`
	SameDay     int     `json:"same_day"`
	Pending     int     `json:"pending"`
	OnTimeRate  float64 `json:"on_time_rate"`
	SameDayRate float64 `json:"same_day_rate"`
	PendingRate float64 `json:"pending_rate"`
	Score       float64 `json:"score"`
	Rating      string  `json:"rating"`
	Trend       string  `json:"trend"`
}

// Alert flags an officer whose performance needs attention, with a concrete
// suggestion for the reviewer.
type Alert struct {
	Officer    string `json:"officer"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// PerformanceReport is the full analytics output for the performance view.
type PerformanceReport struct {
	Officers    []OfficerStats `json:"officers"`
	Bottlenecks []string       `json:"bottlenecks"`
	Alerts      []Alert        `json:"alerts"`
	Insights    []string       `json:"insights"`
}

// Performance computes per-officer submission metrics, a weighted score,
// trend direction over the last two 30-day windows, and the derived alerts
// and insights.
func Performance(reports []models.Report, now time.Time) *PerformanceReport {
	byOfficer := map[string][]models.Report{}
	for i := range reports {
		r := reports[i]
		byOfficer[r.OfficerName] = append(byOfficer[r.OfficerName], r)
	}

	out := &PerformanceReport{}
	for officer, rs := range byOfficer {
		stats := officerStats(officer, rs, now)
		out.Officers = append(out.Officers, stats)

		if stats.PendingRate > 0.5 && stats.Total >= 3 {
			out.Bottlenecks = append(out.Bottlenecks,
				fmt.Sprintf("%s has %d reports awaiting review", officer, stats.Pending))
		}
		if alert, ok := alertFor(stats); ok {
			out.Alerts = append(out.Alerts, alert)
		}
	}

	sort.Slice(out.Officers, func(i, j int) bool {
		return out.Officers[i].Score > out.Officers[j].Score
	})
	sort.Strings(out.Bottlenecks)
	sort.Slice(out.Alerts, func(i, j int) bool { return out.Alerts[i].Officer < out.Alerts[j].Officer })
	out.Insights = insights(out.Officers)
	return out
}

func officerStats(officer string, rs []models.Report, now time.Time) OfficerStats {
	stats := OfficerStats{Officer: officer, Total: len(rs)}
	for i := range rs {
		r := &rs[i]
		if r.IsOnTime() {
			stats.OnTime++
		}
		if r.IsSameDay() {
			stats.SameDay++
		}
		if r.Status == models.StatusPendingReview {
			stats.Pending++
		}
	}

	n := float64(stats.Total)
	if n > 0 {
		stats.OnTimeRate = float64(stats.OnTime) / n
		stats.SameDayRate = float64(stats.SameDay) / n
		stats.PendingRate = float64(stats.Pending) / n
	}
	stats.Score = weightOnTime*stats.OnTimeRate +
		weightSameDay*stats.SameDayRate +
		weightPending*(1-stats.PendingRate)
	stats.Rating = rating(stats.Score)
	stats.Trend = trend(rs, now)
	return stats
}

func rating(score float64) string {
	switch {
	case score >= constants.PerformanceThreshold:
		return "High"
	case score >= constants.WarningThreshold:
		return "Medium"
	default:
		return "Low"
	}
}

// trend compares the on-time rate of the last 30 days with the 30 days
// before that. A swing larger than 15 points marks the direction.
func trend(rs []models.Report, now time.Time) string {
	recentStart := models.DateOf(now.AddDate(0, 0, -trendWindowDays))
	priorStart := models.DateOf(now.AddDate(0, 0, -2*trendWindowDays))

	recentRate, recentOK := onTimeRate(rs, recentStart, models.DateOf(now.AddDate(0, 0, 1)))
	priorRate, priorOK := onTimeRate(rs, priorStart, recentStart)
	if !recentOK || !priorOK {
		return "steady"
	}

	switch {
	case recentRate-priorRate > trendDelta:
		return "improving"
	case priorRate-recentRate > trendDelta:
		return "declining"
	default:
		return "steady"
	}
}

// onTimeRate covers the half-open window [from, to).
func onTimeRate(rs []models.Report, from, to models.Date) (float64, bool) {
	var total, onTime int
	for i := range rs {
		r := &rs[i]
		if r.Date.IsZero() || r.Date.Before(from) || !r.Date.Before(to) {
			continue
		}
		total++
		if r.IsOnTime() {
			onTime++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(onTime) / float64(total), true
}

func alertFor(stats OfficerStats) (Alert, bool) {
	switch {
	case stats.Rating == "Low":
		return Alert{
			Officer:    stats.Officer,
			Severity:   "high",
			Message:    fmt.Sprintf("performance score %.2f is below the warning threshold", stats.Score),
			Suggestion: "Schedule a one-on-one to review submission habits and blockers.",
		}, true
	case stats.Trend == "declining":
		return Alert{
			Officer:    stats.Officer,
			Severity:   "medium",
			Message:    "on-time rate dropped more than 15 points over the last 30 days",
			Suggestion: "Check recent workload changes and confirm report deadlines are clear.",
		}, true
	case stats.PendingRate > 0.5 && stats.Total >= 3:
		return Alert{
			Officer:    stats.Officer,
			Severity:   "low",
			Message:    fmt.Sprintf("%d of %d reports are still awaiting review", stats.Pending, stats.Total),
			Suggestion: "Prioritize the review queue for this officer.",
		}, true
	}
	return Alert{}, false
}

func insights(officers []OfficerStats) []string {
	if len(officers) == 0 {
		return nil
	}

	var out []string
	top := officers[0]
	out = append(out, fmt.Sprintf("%s leads with a performance score of %.2f", top.Officer, top.Score))

	var improving, declining int
	for _, o := range officers {
		switch o.Trend {
		case "improving":
			improving++
		case "declining":
			declining++
		}
	}
	if improving > 0 {
		out = append(out, fmt.Sprintf("%d officer(s) improved their on-time rate over the last 30 days", improving))
	}
	if declining > 0 {
		out = append(out, fmt.Sprintf("%d officer(s) show a declining on-time trend", declining))
	}
	return out
}
