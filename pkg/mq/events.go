package mq

import "time"

// Routing keys on the events exchange.
const (
	RoutingKeyProjectSaved = "project.saved"
)

// ProjectSavedPayload is emitted every time a project is pushed to the
// sheet backend, carrying the progress transition for the history store.
type ProjectSavedPayload struct {
	ProjectID    string    `json:"project_id"`
	ProjectName  string    `json:"project_name"`
	VendorID     string    `json:"vendor_id"`
	ActorID      string    `json:"actor_id"`
	FromProgress float64   `json:"from_progress"`
	ToProgress   float64   `json:"to_progress"`
	Status       string    `json:"status"`
	SavedAt      time.Time `json:"saved_at"`
}
