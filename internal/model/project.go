package model

// ProjectStatus is the lifecycle state of a relocation project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusOnHold     ProjectStatus = "On Hold"
	StatusCompleted  ProjectStatus = "Completed"
	StatusDelayed    ProjectStatus = "Delayed"
)

// AllProjectStatuses lists every known status, in display order.
var AllProjectStatuses = []ProjectStatus{
	StatusPlanning,
	StatusInProgress,
	StatusOnHold,
	StatusCompleted,
	StatusDelayed,
}

// ProjectCategory distinguishes a shared relocation corridor from a
// single-operator route.
type ProjectCategory string

const (
	CategoryRelocation ProjectCategory = "Jalur Relokasi"
	CategoryOperator   ProjectCategory = "Jalur Operator"
)

// MaterialStatus tracks material readiness per operator.
type MaterialStatus string

const (
	MaterialOnSite  MaterialStatus = "On Site"
	MaterialNotYet  MaterialStatus = "Not Yet"
	MaterialPartial MaterialStatus = "Parsial"
	MaterialNone    MaterialStatus = "-"
)

// WorkStatus tracks field work (pulling, cut over) per operator.
type WorkStatus string

const (
	WorkDone       WorkStatus = "Done"
	WorkInProgress WorkStatus = "In Progress"
	WorkNotStarted WorkStatus = "Not Started"
	WorkNone       WorkStatus = "-"
)

// JointSurveyStatus tracks the multi-operator field inspection.
type JointSurveyStatus string

const (
	SurveyScheduled   JointSurveyStatus = "Scheduled"
	SurveyDone        JointSurveyStatus = "Done"
	SurveyPending     JointSurveyStatus = "Pending"
	SurveyRescheduled JointSurveyStatus = "Rescheduled"
	SurveyNotRequired JointSurveyStatus = "-"
)

// AdminDocStatus tracks handover paperwork per operator.
type AdminDocStatus string

const (
	DocDraft     AdminDocStatus = "Draft"
	DocSubmitted AdminDocStatus = "Submitted"
	DocApproved  AdminDocStatus = "Approved"
	DocRevision  AdminDocStatus = "Revision"
	DocPending   AdminDocStatus = "Pending"
)

// AdminPOStatus tracks the purchase-order state per operator.
type AdminPOStatus string

const (
	PONotIssued  AdminPOStatus = "Not Issued"
	POProcessing AdminPOStatus = "Processing"
	POIssued     AdminPOStatus = "Issued"
	PODone       AdminPOStatus = "PO Done"
	POPaid       AdminPOStatus = "Paid"
	POCancelled  AdminPOStatus = "Cancelled"
)

// WorkItem is one physical work line (excavation, HDPE, etc.) with planned
// versus actual quantities.
type WorkItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Weight    float64  `json:"weight"`
	Unit      string   `json:"unit"`
	PlanQty   float64  `json:"planQty"`
	ActualQty float64  `json:"actualQty"`
	Photos    []string `json:"photos"`
	Remarks   string   `json:"remarks,omitempty"`
}

// OperatorCustomItem is a free-form key/value line attached to an operator.
type OperatorCustomItem struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ProjectOperator is one telecom operator participating in a relocation,
// with its field and administrative status facets.
type ProjectOperator struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	ParticipationLength float64 `json:"participationLength"`
	AccessLength        float64 `json:"accessLength"`
	CrossingLength      float64 `json:"crossingLength"`
	HHSharedQty         int     `json:"hhSharedQty"`
	HHPrivateQty        int     `json:"hhPrivateQty"`

	CableType   string               `json:"cableType,omitempty"`
	CustomItems []OperatorCustomItem `json:"customItems,omitempty"`

	StatusMaterial MaterialStatus `json:"statusMaterial"`
	StatusPulling  WorkStatus     `json:"statusPulling"`
	StatusCutOver  WorkStatus     `json:"statusCutOver"`
	Remarks        string         `json:"remarks,omitempty"`

	JointSurveyDate     string            `json:"jointSurveyDate,omitempty"`
	JointSurveyDeadline string            `json:"jointSurveyDeadline,omitempty"`
	JointSurveyStatus   JointSurveyStatus `json:"jointSurveyStatus,omitempty"`
	JointSurveyRemarks  string            `json:"jointSurveyRemarks,omitempty"`

	AdminDocStatus  AdminDocStatus `json:"adminDocStatus,omitempty"`
	AdminPOStatus   AdminPOStatus  `json:"adminPOStatus,omitempty"`
	AdminSubmitDate string         `json:"adminSubmitDate,omitempty"`
	AdminRemarks    string         `json:"adminRemarks,omitempty"`
}

// ScheduleItem is one bar on the implementation Gantt. Weeks are 1-based.
// Predecessors reference other items in the same project by id.
type ScheduleItem struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	StartWeek     int      `json:"startWeek"`
	DurationWeeks int      `json:"durationWeeks"`
	PIC           string   `json:"pic,omitempty"`
	Predecessors  []string `json:"predecessors,omitempty"`
}

// DocumentStatus is one entry of a project's required-document checklist.
type DocumentStatus struct {
	Name     string `json:"name"`
	HasFile  bool   `json:"hasFile"`
	FileName string `json:"fileName,omitempty"`
	URL      string `json:"url,omitempty"`
	IsCustom bool   `json:"isCustom,omitempty"`
}

// HandholeAssignment maps operators into a shared handhole chamber.
type HandholeAssignment struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	OperatorIDs []string `json:"operatorIds"`
}

// ABDFile is an as-built drawing reference, opaque to this service.
type ABDFile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UploadDate string `json:"uploadDate"`
	URL        string `json:"url,omitempty"`
}

// Project is a cable relocation project as stored in the sheet backend.
// Dates are ISO calendar strings (yyyy-mm-dd). The nested collections are
// owned exclusively by the project.
type Project struct {
	ID                      string        `json:"id"`
	VendorID                string        `json:"vendorId"`
	VendorAppointmentNumber string        `json:"vendorAppointmentNumber"`
	Name                    string        `json:"name"`
	Location                string        `json:"location"`
	Status                  ProjectStatus `json:"status"`
	Progress                float64       `json:"progress"`

	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	CutOffDate string  `json:"cutOffDate,omitempty"`

	Remarks     string `json:"remarks"`
	Description string `json:"description"`

	LengthMeter      float64 `json:"lengthMeter"`
	Initiator        string  `json:"initiator"`
	RelocationReason string  `json:"relocationReason"`

	Category      ProjectCategory `json:"category"`
	ProgressMeter float64         `json:"progressMeter"`
	Photos        []string        `json:"photos,omitempty"`

	WorkItems     []WorkItem        `json:"workItems"`
	Operators     []ProjectOperator `json:"operators"`
	ScheduleItems []ScheduleItem    `json:"scheduleItems,omitempty"`

	RequiredDocuments []DocumentStatus `json:"requiredDocuments"`

	HandholeAssignments []HandholeAssignment `json:"handholeAssignments,omitempty"`
	ABDFiles            []ABDFile            `json:"abdFiles,omitempty"`
}
