package report

import (
	"sort"

	"apjatelpmo/internal/model"
)

// UnknownBucket is the label used when a counted field is empty or a vendor
// id does not resolve.
const UnknownBucket = "Unknown"

// Bucket is one (category, count) pair of a histogram.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OperatorField selects which operator status facet CountOperatorField
// counts.
type OperatorField string

const (
	FieldMaterial OperatorField = "material"
	FieldPulling  OperatorField = "pulling"
	FieldCutOver  OperatorField = "cutOver"
	FieldSurvey   OperatorField = "survey"
	FieldPOStatus OperatorField = "poStatus"
)

// counter accumulates categorical counts while remembering first-seen order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if name == "" {
		name = UnknownBucket
	}
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// buckets returns the counts in first-seen order.
func (c *counter) buckets() []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Bucket{Name: name, Value: c.counts[name]})
	}
	return out
}

// bucketsByCount returns the counts sorted descending by count; ties keep
// first-seen order.
func (c *counter) bucketsByCount() []Bucket {
	out := c.buckets()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// CountByStatus counts projects per status, one bucket per distinct value
// observed, in first-seen order. The source pie chart enumerates all known
// statuses and then drops zero buckets, which yields the same visible set.
func CountByStatus(projects []model.Project) []Bucket {
	c := newCounter()
	for _, p := range projects {
		c.add(string(p.Status))
	}
	return c.buckets()
}

// CountByLocation counts projects per location, sorted descending by count.
func CountByLocation(projects []model.Project) []Bucket {
	c := newCounter()
	for _, p := range projects {
		c.add(p.Location)
	}
	return c.bucketsByCount()
}

// CountByVendor counts projects per resolved vendor display name, sorted
// descending by count. Unresolvable vendor ids land in the Unknown bucket.
func CountByVendor(projects []model.Project, vendors model.VendorLookup) []Bucket {
	c := newCounter()
	for _, p := range projects {
		c.add(vendors.Name(p.VendorID, UnknownBucket))
	}
	return c.bucketsByCount()
}

// CountOperatorField flattens every project's operators and counts the chosen
// status facet. Empty values land in the Unknown bucket. An unrecognized
// field yields an empty histogram.
func CountOperatorField(projects []model.Project, field OperatorField) []Bucket {
	c := newCounter()
	for _, p := range projects {
		for _, op := range p.Operators {
			switch field {
			case FieldMaterial:
				c.add(string(op.StatusMaterial))
			case FieldPulling:
				c.add(string(op.StatusPulling))
			case FieldCutOver:
				c.add(string(op.StatusCutOver))
			case FieldSurvey:
				c.add(string(op.JointSurveyStatus))
			case FieldPOStatus:
				c.add(string(op.AdminPOStatus))
			}
		}
	}
	return c.buckets()
}
