package analytics

import (
	"strings"

	"github.com/officerhub/report-management-api/internal/models"
)

// SearchScope selects which report fields a Search term runs against.
type SearchScope string

const (
	ScopeAll     SearchScope = "all"
	ScopeOfficer SearchScope = "officer"
	ScopeCompany SearchScope = "company"
	ScopeContent SearchScope = "content"
	ScopeType    SearchScope = "type"
)

func (s SearchScope) Valid() bool {
	switch s {
	case "", ScopeAll, ScopeOfficer, ScopeCompany, ScopeContent, ScopeType:
		return true
	}
	return false
}

// Filter narrows a report set. Zero-valued fields match everything.
type Filter struct {
	Officer string
	Type    models.ReportType
	Status  models.ReportStatus
	From    models.Date
	To      models.Date
	Search  string
	Scope   SearchScope
}

// searchFields returns the fields the filter's scope searches over. An empty
// scope behaves like ScopeAll.
func (f Filter) searchFields(r *models.Report) []string {
	switch f.Scope {
	case ScopeOfficer:
		return []string{r.OfficerName}
	case ScopeCompany:
		return []string{r.CompanyName}
	case ScopeContent:
		return []string{r.Tasks, r.Challenges, r.Solutions}
	case ScopeType:
		return []string{string(r.Type)}
	}
	return []string{
		r.OfficerName, r.CompanyName, string(r.Type),
		r.Tasks, r.Challenges, r.Solutions,
	}
}

// Match reports whether r passes every set criterion. Search is a
// case-insensitive substring match over the fields its Scope selects.
func (f Filter) Match(r *models.Report) bool {
	if f.Officer != "" && r.OfficerName != f.Officer {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && r.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && f.To.Before(r.Date) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(strings.Join(f.searchFields(r), "\n"))
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// Apply returns the reports matching f, preserving order.
func Apply(reports []models.Report, f Filter) []models.Report {
	var out []models.Report
	for i := range reports {
		if f.Match(&reports[i]) {
			out = append(out, reports[i])
		}
	}
	return out
}
