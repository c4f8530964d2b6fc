package models

// DecisionEvent is published after a decision attempt has been committed.
type DecisionEvent struct {
	EventID        string             `json:"event_id"`        // EventID is a unique identifier for the event.
	Timestamp      int64              `json:"timestamp"`       // Timestamp is the Unix time (seconds) of the commit.
	ContributionID int64              `json:"contribution_id"` // ContributionID is the decided contribution.
	AdminID        int64              `json:"admin_id"`        // AdminID is the admin who made the attempt.
	Decision       Decision           `json:"decision"`        // Decision is the verdict that was requested.
	Status         ContributionStatus `json:"status"`          // Status is the contribution status after the commit.
	Outcome        DecisionOutcome    `json:"outcome"`         // Outcome tells applied decisions from repeats.
}
