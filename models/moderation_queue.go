package models

import "time"

// Queue priority values, highest first.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ModerationQueue represents the moderation_queue table. Exactly one row
// exists per content report; it is created in the same transaction.
type ModerationQueue struct {
	QueueID    int        `gorm:"primaryKey;column:queue_id" json:"queue_id"`
	ReportID   int        `gorm:"column:report_id;unique" json:"report_id"`
	Priority   string     `gorm:"column:priority" json:"priority"`
	AssignedTo *int       `gorm:"column:assigned_to" json:"assigned_to,omitempty"`
	AssignedAt *time.Time `gorm:"column:assigned_at" json:"assigned_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`

	// Relations
	Report   ContentReport `gorm:"foreignKey:ReportID;references:ReportID" json:"report,omitempty"`
	Assignee *User         `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

func (ModerationQueue) TableName() string {
	return "moderation_queue"
}

func (q *ModerationQueue) IsAssigned() bool {
	return q.AssignedTo != nil
}

func (q *ModerationQueue) IsUrgent() bool {
	return q.Priority == PriorityUrgent
}

func (q *ModerationQueue) IsHigh() bool {
	return q.Priority == PriorityHigh
}

// PriorityRank maps a priority label to its sort rank. Lower ranks are
// served first; unknown labels sort after low.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}
