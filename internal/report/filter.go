// Package report contains the pure reporting core of the portal: project
// filtering, dashboard aggregation, and progress computation. Nothing in this
// package performs I/O or mutates its inputs; outputs are freshly allocated.
package report

import (
	"time"

	"apjatelpmo/internal/model"
)

// Criteria is the set of active dashboard filters. Zero-valued fields are
// inactive; active fields are AND-combined.
type Criteria struct {
	Status   model.ProjectStatus `json:"status,omitempty" form:"status"`
	Location string              `json:"location,omitempty" form:"location"`
	// Vendor matches the display name resolved via the vendor lookup,
	// not the raw vendor id.
	Vendor    string `json:"vendor,omitempty" form:"vendor"`
	IsOverdue bool   `json:"isOverdue,omitempty" form:"isOverdue"`

	// Operator facets: a project matches when ANY of its operators has the
	// given value.
	Material model.MaterialStatus    `json:"material,omitempty" form:"material"`
	Pulling  model.WorkStatus        `json:"pulling,omitempty" form:"pulling"`
	CutOver  model.WorkStatus        `json:"cutOver,omitempty" form:"cutOver"`
	Survey   model.JointSurveyStatus `json:"survey,omitempty" form:"survey"`
	POStatus model.AdminPOStatus     `json:"poStatus,omitempty" form:"poStatus"`
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Filter returns the projects matching the criteria, preserving input order.
// The today argument anchors the overdue comparison; time of day is ignored.
// The result is never nil.
func Filter(projects []model.Project, criteria Criteria, vendors model.VendorLookup, today time.Time) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if matches(p, criteria, vendors, today) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p model.Project, c Criteria, vendors model.VendorLookup, today time.Time) bool {
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.Location != "" && p.Location != c.Location {
		return false
	}
	if c.Vendor != "" && vendors.Name(p.VendorID, "Unknown") != c.Vendor {
		return false
	}
	if c.IsOverdue && !IsOverdue(p, today) {
		return false
	}
	if c.Material != "" && !anyOperator(p, func(op model.ProjectOperator) bool { return op.StatusMaterial == c.Material }) {
		return false
	}
	if c.Pulling != "" && !anyOperator(p, func(op model.ProjectOperator) bool { return op.StatusPulling == c.Pulling }) {
		return false
	}
	if c.CutOver != "" && !anyOperator(p, func(op model.ProjectOperator) bool { return op.StatusCutOver == c.CutOver }) {
		return false
	}
	if c.Survey != "" && !anyOperator(p, func(op model.ProjectOperator) bool { return op.JointSurveyStatus == c.Survey }) {
		return false
	}
	if c.POStatus != "" && !anyOperator(p, func(op model.ProjectOperator) bool { return op.AdminPOStatus == c.POStatus }) {
		return false
	}
	return true
}

// anyOperator is an existential check over the operator list. A project with
// no operators never matches a facet.
func anyOperator(p model.Project, pred func(model.ProjectOperator) bool) bool {
	for _, op := range p.Operators {
		if pred(op) {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the project's end date has passed and it is not
// complete. Dates are compared at day precision. Projects without an end date
// are never overdue; unparseable dates are treated the same way.
func IsOverdue(p model.Project, today time.Time) bool {
	if p.EndDate == "" || p.Progress >= 100 {
		return false
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return end.Before(day)
}

// ScopeByVendor returns only the projects owned by vendorID. The admin
// sentinel id sees everything. Order is preserved, result never nil.
func ScopeByVendor(projects []model.Project, vendorID, adminID string) []model.Project {
	if vendorID == adminID {
		out := make([]model.Project, len(projects))
		copy(out, projects)
		return out
	}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out
}
