package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apjatelpmo/internal/model"
)

func TestWorkItemPercent(t *testing.T) {
	assert.Equal(t, 50.0, WorkItemPercent(model.WorkItem{PlanQty: 200, ActualQty: 100}))
	assert.Equal(t, 100.0, WorkItemPercent(model.WorkItem{PlanQty: 100, ActualQty: 100}))
}

func TestWorkItemPercentCapsAtHundred(t *testing.T) {
	assert.Equal(t, 100.0, WorkItemPercent(model.WorkItem{PlanQty: 100, ActualQty: 150}))
}

func TestWorkItemPercentZeroPlan(t *testing.T) {
	assert.Equal(t, 0.0, WorkItemPercent(model.WorkItem{PlanQty: 0, ActualQty: 50}))
	assert.Equal(t, 0.0, WorkItemPercent(model.WorkItem{PlanQty: -10, ActualQty: 50}))
}

func TestProjectProgressAverages(t *testing.T) {
	items := []model.WorkItem{
		{PlanQty: 100, ActualQty: 100},
		{PlanQty: 100, ActualQty: 50},
	}
	assert.Equal(t, 75.0, ProjectProgress(items))
}

func TestProjectProgressEmptyList(t *testing.T) {
	assert.Equal(t, 0.0, ProjectProgress(nil))
	assert.Equal(t, 0.0, ProjectProgress([]model.WorkItem{}))
}

func TestProjectProgressZeroPlanItemsStayInDenominator(t *testing.T) {
	// One complete item plus one placeholder row averages to 50, not 100.
	items := []model.WorkItem{
		{PlanQty: 100, ActualQty: 100},
		{PlanQty: 0, ActualQty: 0},
	}
	assert.Equal(t, 50.0, ProjectProgress(items))
}

func TestRoundProgress(t *testing.T) {
	assert.Equal(t, 33.3, RoundProgress(100.0/3.0))
	assert.Equal(t, 66.7, RoundProgress(200.0/3.0))
	assert.Equal(t, 100.0, RoundProgress(100))
}
