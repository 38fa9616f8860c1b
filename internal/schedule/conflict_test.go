package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apjatelpmo/internal/model"
)

func item(id string, start, dur int, preds ...string) model.ScheduleItem {
	return model.ScheduleItem{ID: id, StartWeek: start, DurationWeeks: dur, Predecessors: preds}
}

func checkByID(t *testing.T, checks []ItemCheck, id string) ItemCheck {
	t.Helper()
	for _, c := range checks {
		if c.ItemID == id {
			return c
		}
	}
	t.Fatalf("no check for item %q", id)
	return ItemCheck{}
}

func TestCheckConflictsDetectsOverlap(t *testing.T) {
	// B starts on week 3 but A runs through week 4.
	checks := CheckConflicts([]model.ScheduleItem{
		item("A", 1, 3),
		item("B", 3, 2, "A"),
	})

	require.Len(t, checks, 2)
	assert.False(t, checkByID(t, checks, "A").Conflicted)

	b := checkByID(t, checks, "B")
	assert.True(t, b.Conflicted)
	assert.Equal(t, []string{"A"}, b.ViolatedPredecessors)
}

func TestCheckConflictsBackToBackIsClean(t *testing.T) {
	// B starts exactly when A ends.
	checks := CheckConflicts([]model.ScheduleItem{
		item("A", 1, 3),
		item("B", 4, 2, "A"),
	})
	assert.False(t, checkByID(t, checks, "B").Conflicted)
}

func TestCheckConflictsCollectsAllViolations(t *testing.T) {
	checks := CheckConflicts([]model.ScheduleItem{
		item("A", 1, 4),
		item("B", 1, 3),
		item("C", 2, 2, "A", "B"),
	})

	c := checkByID(t, checks, "C")
	assert.True(t, c.Conflicted)
	assert.Equal(t, []string{"A", "B"}, c.ViolatedPredecessors)
}

func TestCheckConflictsIgnoresDanglingPredecessor(t *testing.T) {
	checks := CheckConflicts([]model.ScheduleItem{
		item("A", 1, 2, "ghost"),
	})
	assert.False(t, checkByID(t, checks, "A").Conflicted)
	assert.Empty(t, checkByID(t, checks, "A").ViolatedPredecessors)
}

func TestCheckConflictsSelfReference(t *testing.T) {
	// An item can never start after its own end when duration is positive.
	checks := CheckConflicts([]model.ScheduleItem{
		item("A", 2, 1, "A"),
	})
	a := checkByID(t, checks, "A")
	assert.True(t, a.Conflicted)
	assert.Equal(t, []string{"A"}, a.ViolatedPredecessors)
}

func TestCheckConflictsToleratesCycles(t *testing.T) {
	checks := CheckConflicts([]model.ScheduleItem{
		item("A", 1, 2, "B"),
		item("B", 3, 2, "A"),
	})

	require.Len(t, checks, 2)
	assert.True(t, checkByID(t, checks, "A").Conflicted)
	assert.False(t, checkByID(t, checks, "B").Conflicted)
}

func TestCheckConflictsIsDeterministic(t *testing.T) {
	items := []model.ScheduleItem{
		item("A", 1, 4),
		item("B", 2, 2, "A"),
		item("C", 3, 1, "A", "B"),
	}
	first := CheckConflicts(items)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CheckConflicts(items))
	}
}

func TestCheckConflictsDoesNotMutateInput(t *testing.T) {
	items := []model.ScheduleItem{
		item("A", 1, 3),
		item("B", 2, 1, "A"),
	}
	CheckConflicts(items)
	assert.Equal(t, []string{"A"}, items[1].Predecessors)
	assert.Equal(t, 1, items[0].StartWeek)
}

func TestTimelineWeeksFloor(t *testing.T) {
	assert.Equal(t, MinTimelineWeeks, TimelineWeeks(nil))
	assert.Equal(t, MinTimelineWeeks, TimelineWeeks([]model.ScheduleItem{item("A", 1, 2)}))
}

func TestTimelineWeeksExtends(t *testing.T) {
	assert.Equal(t, 20, TimelineWeeks([]model.ScheduleItem{
		item("A", 1, 3),
		item("B", 14, 6),
	}))
}

func TestTimelineWeeksClampsNonPositiveDuration(t *testing.T) {
	// A zero-duration item at week 15 still widens the view to week 16.
	assert.Equal(t, 16, TimelineWeeks([]model.ScheduleItem{item("A", 15, 0)}))
}

func TestTimelineMonths(t *testing.T) {
	assert.Equal(t, 3, TimelineMonths(nil))
	assert.Equal(t, 5, TimelineMonths([]model.ScheduleItem{item("A", 14, 4)}))
}
