package portfolio

import "time"

type Resource string

const (
	ResourceAboutMe Resource = "about_me"
	ResourceContact Resource = "contact"
	ResourceSkill   Resource = "skill"
	ResourceProject Resource = "project"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ContentEvent announces a committed write to one of the portfolio tables.
type ContentEvent struct {
	EventID    string    `json:"event_id"`
	Resource   Resource  `json:"resource"`
	Action     Action    `json:"action"`
	ResourceID int64     `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
