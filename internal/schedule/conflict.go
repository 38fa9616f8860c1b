// Package schedule checks implementation-schedule items for dependency
// conflicts. All functions are pure: they never mutate their inputs.
package schedule

import "apjatelpmo/internal/model"

// MinTimelineWeeks is the minimum span the Gantt view renders, regardless of
// how short the schedule itself is.
const MinTimelineWeeks = 12

// ItemCheck is the conflict result for a single schedule item.
type ItemCheck struct {
	ItemID string `json:"itemId"`
	// Conflicted is true when the item starts before at least one of its
	// predecessors finishes.
	Conflicted bool `json:"conflicted"`
	// ViolatedPredecessors lists every predecessor id whose end week is
	// after the item's start week.
	ViolatedPredecessors []string `json:"violatedPredecessors,omitempty"`
}

// CheckConflicts evaluates each item against its direct predecessors.
// An item conflicts when item.StartWeek < pred.StartWeek + pred.DurationWeeks
// for any predecessor resolvable within the list. Predecessor ids that do not
// resolve are ignored. Cycles are tolerated: only direct pairwise relations
// are examined, so the scan always terminates. A self-referencing item with
// positive duration is always a conflict.
func CheckConflicts(items []model.ScheduleItem) []ItemCheck {
	byID := make(map[string]model.ScheduleItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	checks := make([]ItemCheck, 0, len(items))
	for _, it := range items {
		check := ItemCheck{ItemID: it.ID}
		for _, predID := range it.Predecessors {
			pred, ok := byID[predID]
			if !ok {
				continue // dangling reference
			}
			predEnd := pred.StartWeek + pred.DurationWeeks
			if it.StartWeek < predEnd {
				check.Conflicted = true
				check.ViolatedPredecessors = append(check.ViolatedPredecessors, predID)
			}
		}
		checks = append(checks, check)
	}
	return checks
}

// TimelineWeeks returns the number of weeks the Gantt view should span:
// the latest item end, floored at MinTimelineWeeks. Items with a non-positive
// duration are treated as one week wide for display purposes only.
func TimelineWeeks(items []model.ScheduleItem) int {
	weeks := MinTimelineWeeks
	for _, it := range items {
		dur := it.DurationWeeks
		if dur < 1 {
			dur = 1
		}
		if end := it.StartWeek + dur; end > weeks {
			weeks = end
		}
	}
	return weeks
}

// TimelineMonths returns the number of 4-week chunks the view renders.
func TimelineMonths(items []model.ScheduleItem) int {
	weeks := TimelineWeeks(items)
	return (weeks + 3) / 4
}
