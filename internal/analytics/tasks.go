package analytics

import (
	"sort"
	"time"

	"github.com/officerhub/report-management-api/internal/constants"
	"github.com/officerhub/report-management-api/internal/models"
)

// AssigneeStats is one assignee's slice of the task analytics.
type AssigneeStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// TaskAnalytics is the aggregate view of a task set.
type TaskAnalytics struct {
	Total             int                      `json:"total"`
	ByStatus          map[string]int           `json:"by_status"`
	ByPriority        map[string]int           `json:"by_priority"`
	ByCategory        map[string]int           `json:"by_category"`
	Overdue           int                      `json:"overdue"`
	DueSoon           int                      `json:"due_soon"`
	CompletionRate    float64                  `json:"completion_rate"`
	AvgCompletionDays float64                  `json:"avg_completion_days"`
	ByAssignee        map[string]AssigneeStats `json:"by_assignee"`
	CreatedMonthly    []Bucket                 `json:"created_monthly"`
}

// AnalyzeTasks counts tasks by status, priority, category and assignee, and
// derives the deadline metrics. A task is overdue when its due date has
// passed and it is not completed; due soon means due within the upcoming
// window.
func AnalyzeTasks(tasks []models.Task, now time.Time) *TaskAnalytics {
	out := &TaskAnalytics{
		Total:      len(tasks),
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
		ByCategory: map[string]int{},
		ByAssignee: map[string]AssigneeStats{},
	}

	today := models.DateOf(now)
	horizon := models.DateOf(now.AddDate(0, 0, constants.UpcomingWindowDays))

	var completed, timed int
	var completionDays float64
	for i := range tasks {
		t := &tasks[i]
		out.ByStatus[string(t.Status)]++
		out.ByPriority[string(t.Priority)]++
		out.ByCategory[string(t.Category)]++

		done := t.Status == models.TaskStatusCompleted
		overdue := !done && !t.DueDate.IsZero() && t.DueDate.Before(today)
		if overdue {
			out.Overdue++
		}
		if !done && !t.DueDate.IsZero() && !t.DueDate.Before(today) && t.DueDate.Before(horizon) {
			out.DueSoon++
		}
		if done {
			completed++
			// Turnaround is measured from creation to the stamped completion
			// date; older records without one are left out of the average.
			if t.CompletedDate != nil && !t.CreatedDate.IsZero() {
				timed++
				completionDays += t.CompletedDate.Sub(t.CreatedDate.Time).Hours() / 24
			}
		}

		stats := out.ByAssignee[t.AssignedTo]
		stats.Total++
		if done {
			stats.Completed++
		}
		if overdue {
			stats.Overdue++
		}
		out.ByAssignee[t.AssignedTo] = stats
	}

	if out.Total > 0 {
		out.CompletionRate = float64(completed) / float64(out.Total)
	}
	if timed > 0 {
		out.AvgCompletionDays = completionDays / float64(timed)
	}

	created := map[string]int{}
	for i := range tasks {
		if tasks[i].CreatedDate.IsZero() {
			continue
		}
		created[tasks[i].CreatedDate.Format("2006-01")]++
	}
	for period, count := range created {
		out.CreatedMonthly = append(out.CreatedMonthly, Bucket{Period: period, Count: count})
	}
	sort.Slice(out.CreatedMonthly, func(i, j int) bool {
		return out.CreatedMonthly[i].Period < out.CreatedMonthly[j].Period
	})
	return out
}
