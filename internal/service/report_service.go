package service

import (
	"strings"
	"time"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/report"
)

// KPIBlock is the headline card row of the dashboard.
type KPIBlock struct {
	TotalProjects   int     `json:"totalProjects"`
	UniqueLocations int     `json:"uniqueLocations"`
	TotalLengthKm   float64 `json:"totalLengthKm"`
	OverdueProjects int     `json:"overdueProjects"`
	// TotalVendors is only populated for admin callers.
	TotalVendors int `json:"totalVendors,omitempty"`
}

// ProjectRow is one line of the monitoring table.
type ProjectRow struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Location  string              `json:"location"`
	Progress  float64             `json:"progress"`
	Status    model.ProjectStatus `json:"status"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Overdue   bool                `json:"overdue"`
}

// AdminRow is one line of the per-operator administrative table.
type AdminRow struct {
	ProjectID    string               `json:"projectId"`
	ProjectName  string               `json:"projectName"`
	Location     string               `json:"location"`
	OperatorName string               `json:"operatorName"`
	POStatus     model.AdminPOStatus  `json:"poStatus"`
	DocStatus    model.AdminDocStatus `json:"docStatus"`
	SubmitDate   string               `json:"submitDate"`
	Remarks      string               `json:"remarks"`
}

// DashboardSummary bundles everything the dashboard renders in one response.
type DashboardSummary struct {
	KPIs KPIBlock `json:"kpis"`

	StatusData   []report.Bucket `json:"statusData"`
	LocationData []report.Bucket `json:"locationData"`
	// VendorData is only populated for admin callers.
	VendorData   []report.Bucket `json:"vendorData,omitempty"`
	MaterialData []report.Bucket `json:"materialData"`
	PullingData  []report.Bucket `json:"pullingData"`
	CutOverData  []report.Bucket `json:"cutOverData"`
	SurveyData   []report.Bucket `json:"surveyData"`
	POData       []report.Bucket `json:"poData"`

	Projects  []ProjectRow `json:"projects"`
	AdminRows []AdminRow   `json:"adminRows"`
}

// ReportService assembles dashboard summaries from an already vendor-scoped
// project list. It owns no state beyond a clock, so the overdue anchor can
// be pinned in tests.
type ReportService struct {
	now func() time.Time
}

func NewReportService() *ReportService {
	return &ReportService{now: time.Now}
}

// Summarize applies the filter criteria and aggregates every dashboard
// dataset. The status histogram is computed over the scoped (pre-filter)
// input so the pie chart keeps showing the whole population while the card
// filters narrow the tables, matching the dashboard's behaviour.
func (s *ReportService) Summarize(projects []model.Project, criteria report.Criteria, vendors model.VendorLookup, isAdmin bool) DashboardSummary {
	today := s.now()
	filtered := report.Filter(projects, criteria, vendors, today)

	summary := DashboardSummary{
		KPIs:         s.kpis(filtered, vendors, isAdmin, today),
		StatusData:   report.CountByStatus(projects),
		LocationData: report.CountByLocation(filtered),
		MaterialData: report.CountOperatorField(filtered, report.FieldMaterial),
		PullingData:  report.CountOperatorField(filtered, report.FieldPulling),
		CutOverData:  report.CountOperatorField(filtered, report.FieldCutOver),
		SurveyData:   report.CountOperatorField(filtered, report.FieldSurvey),
		POData:       report.CountOperatorField(filtered, report.FieldPOStatus),
		Projects:     s.projectRows(filtered, today),
		AdminRows:    s.adminRows(filtered, criteria),
	}
	if isAdmin {
		summary.VendorData = report.CountByVendor(filtered, vendors)
	}
	return summary
}

func (s *ReportService) kpis(projects []model.Project, vendors model.VendorLookup, isAdmin bool, today time.Time) KPIBlock {
	locations := map[string]struct{}{}
	var totalLength float64
	overdue := 0
	for _, p := range projects {
		locations[strings.TrimSpace(p.Location)] = struct{}{}
		totalLength += p.LengthMeter
		if report.IsOverdue(p, today) {
			overdue++
		}
	}

	kpis := KPIBlock{
		TotalProjects:   len(projects),
		UniqueLocations: len(locations),
		TotalLengthKm:   totalLength / 1000,
		OverdueProjects: overdue,
	}
	if isAdmin {
		kpis.TotalVendors = len(vendors)
	}
	return kpis
}

func (s *ReportService) projectRows(projects []model.Project, today time.Time) []ProjectRow {
	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, ProjectRow{
			ID:        p.ID,
			Name:      p.Name,
			Location:  p.Location,
			Progress:  p.Progress,
			Status:    p.Status,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Overdue:   report.IsOverdue(p, today),
		})
	}
	return rows
}

// adminRows flattens operators into table rows, re-applying the operator
// facets so the table lines up with the facet charts: a facet filter keeps a
// project when ANY operator matches, but the table should only show the
// matching operators.
func (s *ReportService) adminRows(projects []model.Project, c report.Criteria) []AdminRow {
	rows := []AdminRow{}
	for _, p := range projects {
		for _, op := range p.Operators {
			if c.Material != "" && op.StatusMaterial != c.Material {
				continue
			}
			if c.Pulling != "" && op.StatusPulling != c.Pulling {
				continue
			}
			if c.CutOver != "" && op.StatusCutOver != c.CutOver {
				continue
			}
			if c.Survey != "" && op.JointSurveyStatus != c.Survey {
				continue
			}
			if c.POStatus != "" && op.AdminPOStatus != c.POStatus {
				continue
			}
			rows = append(rows, AdminRow{
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				Location:     p.Location,
				OperatorName: op.Name,
				POStatus:     op.AdminPOStatus,
				DocStatus:    op.AdminDocStatus,
				SubmitDate:   op.AdminSubmitDate,
				Remarks:      op.AdminRemarks,
			})
		}
	}
	return rows
}
