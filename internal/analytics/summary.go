package analytics

import (
	"sort"

	"github.com/officerhub/report-management-api/internal/models"
)

const recentLimit = 5

// Summary is the aggregate view of a report set.
type Summary struct {
	TotalReports  int             `json:"total_reports"`
	TotalOfficers int             `json:"total_officers"`
	Companies     int             `json:"companies"`
	ByType        map[string]int  `json:"by_type"`
	ByOfficer     map[string]int  `json:"by_officer"`
	ByCompany     map[string]int  `json:"by_company"`
	ByStatus      map[string]int  `json:"by_status"`
	Recent        []models.Report `json:"recent"`
}

// Summarize counts a report set by type, officer, company and status, and
// picks the most recently submitted reports.
func Summarize(reports []models.Report) *Summary {
	s := &Summary{
		TotalReports: len(reports),
		ByType:       map[string]int{},
		ByOfficer:    map[string]int{},
		ByCompany:    map[string]int{},
		ByStatus:     map[string]int{},
	}

	for i := range reports {
		r := &reports[i]
		s.ByType[string(r.Type)]++
		s.ByOfficer[r.OfficerName]++
		s.ByStatus[string(r.Status)]++
		if r.CompanyName != "" {
			s.ByCompany[r.CompanyName]++
		}
	}
	s.TotalOfficers = len(s.ByOfficer)
	s.Companies = len(s.ByCompany)

	recent := make([]models.Report, len(reports))
	copy(recent, reports)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].SubmissionDate.After(recent[j].SubmissionDate)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	s.Recent = recent
	return s
}
