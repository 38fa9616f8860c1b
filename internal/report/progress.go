package report

import (
	"math"

	"apjatelpmo/internal/model"
)

// WorkItemPercent is the completion share of a single work item: capped at
// 100, and 0 when nothing was planned.
func WorkItemPercent(item model.WorkItem) float64 {
	if item.PlanQty <= 0 {
		return 0
	}
	return math.Min(100, item.ActualQty/item.PlanQty*100)
}

// ProjectProgress averages the per-item percentages over ALL work items.
// Items with a zero plan quantity contribute 0 but stay in the denominator;
// that matches the behaviour the field teams sign off against, even though it
// drags the average down for projects carrying placeholder rows. An empty
// item list yields 0.
func ProjectProgress(items []model.WorkItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		sum += WorkItemPercent(it)
	}
	return sum / float64(len(items))
}

// RoundProgress rounds to one decimal, the precision persisted on the
// project record.
func RoundProgress(pct float64) float64 {
	return math.Round(pct*10) / 10
}
