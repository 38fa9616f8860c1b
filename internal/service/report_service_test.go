package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/report"
)

func pinnedReportService(t *testing.T) *ReportService {
	t.Helper()
	s := NewReportService()
	s.now = func() time.Time {
		return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func summaryFixture() ([]model.Project, model.VendorLookup) {
	projects := []model.Project{
		{
			ID:          "P1",
			Name:        "Relokasi Tol Jakarta",
			Location:    "Jakarta",
			VendorID:    "v-telaga",
			Status:      model.StatusInProgress,
			Progress:    40,
			LengthMeter: 1500,
			EndDate:     "2026-03-01",
			Operators: []model.ProjectOperator{
				{Name: "Telkom", StatusMaterial: model.MaterialOnSite, AdminPOStatus: model.POIssued},
				{Name: "XL", StatusMaterial: model.MaterialNotYet, AdminPOStatus: model.PONotIssued},
			},
		},
		{
			ID:          "P2",
			Name:        "Relokasi Tol Bandung",
			Location:    "Bandung",
			VendorID:    "v-nusantara",
			Status:      model.StatusCompleted,
			Progress:    100,
			LengthMeter: 500,
			EndDate:     "2026-02-01",
			Operators: []model.ProjectOperator{
				{Name: "Telkom", StatusMaterial: model.MaterialOnSite, AdminPOStatus: model.POPaid},
			},
		},
	}
	vendors := model.NewVendorLookup([]model.Vendor{
		{ID: "v-telaga", Name: "PT Telaga Fiber"},
		{ID: "v-nusantara", Name: "PT Nusantara Optik"},
	})
	return projects, vendors
}

func TestSummarizeUnfiltered(t *testing.T) {
	s := pinnedReportService(t)
	projects, vendors := summaryFixture()

	got := s.Summarize(projects, report.Criteria{}, vendors, false)

	assert.Equal(t, 2, got.KPIs.TotalProjects)
	assert.Equal(t, 2, got.KPIs.UniqueLocations)
	assert.InDelta(t, 2.0, got.KPIs.TotalLengthKm, 1e-9)
	assert.Equal(t, 1, got.KPIs.OverdueProjects)
	assert.Zero(t, got.KPIs.TotalVendors)

	assert.Equal(t, []report.Bucket{
		{Name: "In Progress", Value: 1},
		{Name: "Completed", Value: 1},
	}, got.StatusData)

	require.Len(t, got.Projects, 2)
	assert.True(t, got.Projects[0].Overdue)
	assert.False(t, got.Projects[1].Overdue)

	// One admin row per operator.
	assert.Len(t, got.AdminRows, 3)
	// Vendor data is withheld from non-admin callers.
	assert.Nil(t, got.VendorData)
}

func TestSummarizeAdminGetsVendorData(t *testing.T) {
	s := pinnedReportService(t)
	projects, vendors := summaryFixture()

	got := s.Summarize(projects, report.Criteria{}, vendors, true)

	assert.Equal(t, 2, got.KPIs.TotalVendors)
	assert.ElementsMatch(t, []report.Bucket{
		{Name: "PT Telaga Fiber", Value: 1},
		{Name: "PT Nusantara Optik", Value: 1},
	}, got.VendorData)
}

func TestSummarizeStatusChartIgnoresFilters(t *testing.T) {
	s := pinnedReportService(t)
	projects, vendors := summaryFixture()

	got := s.Summarize(projects, report.Criteria{Status: model.StatusCompleted}, vendors, false)

	// Tables narrow to the filtered set.
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "P2", got.Projects[0].ID)

	// The status pie keeps showing the whole scoped population.
	assert.Equal(t, []report.Bucket{
		{Name: "In Progress", Value: 1},
		{Name: "Completed", Value: 1},
	}, got.StatusData)
}

func TestSummarizeAdminRowsReapplyOperatorFacet(t *testing.T) {
	s := pinnedReportService(t)
	projects, vendors := summaryFixture()

	got := s.Summarize(projects, report.Criteria{Material: model.MaterialOnSite}, vendors, false)

	// Both projects survive the existential facet, but the table only shows
	// the operators that actually match.
	assert.Len(t, got.Projects, 2)
	require.Len(t, got.AdminRows, 2)
	for _, row := range got.AdminRows {
		assert.Equal(t, "Telkom", row.OperatorName)
	}
}

func TestSummarizeOperatorHistograms(t *testing.T) {
	s := pinnedReportService(t)
	projects, vendors := summaryFixture()

	got := s.Summarize(projects, report.Criteria{}, vendors, false)

	assert.Equal(t, []report.Bucket{
		{Name: "On Site", Value: 2},
		{Name: "Not Yet", Value: 1},
	}, got.MaterialData)
	assert.Equal(t, []report.Bucket{
		{Name: "Issued", Value: 1},
		{Name: "Not Issued", Value: 1},
		{Name: "Paid", Value: 1},
	}, got.POData)
}
