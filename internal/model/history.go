package model

import "time"

// ProgressHistory is one audit row recorded whenever a project save changes
// stored progress. It lives in Postgres, not in the sheet.
type ProgressHistory struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	ProjectName  string    `json:"projectName"`
	VendorID     string    `json:"vendorId"`
	ActorID      string    `json:"actorId"`
	FromProgress float64   `json:"fromProgress"`
	ToProgress   float64   `json:"toProgress"`
	Status       string    `json:"status"`
	RecordedAt   time.Time `json:"recordedAt"`
}
