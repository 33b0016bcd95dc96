package models

import "time"

// Decision outcomes recorded by reviewers.
const (
	DecisionApproveAction = "approve_action"
	DecisionRejectReport  = "reject_report"
	DecisionEscalate      = "escalate"
)

// ModerationDecision represents the moderation_decisions table. A report
// carries at most one decision; creating it closes the report.
type ModerationDecision struct {
	DecisionID  int       `gorm:"primaryKey;column:decision_id" json:"decision_id"`
	ReportID    int       `gorm:"column:report_id;unique" json:"report_id"`
	ModeratorID int       `gorm:"column:moderator_id" json:"moderator_id"`
	Decision    string    `gorm:"column:decision" json:"decision"`
	Reasoning   string    `gorm:"column:reasoning" json:"reasoning"`
	Appealable  bool      `gorm:"column:appealable" json:"appealable"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Moderator User `gorm:"foreignKey:ModeratorID" json:"moderator,omitempty"`
}

func (ModerationDecision) TableName() string {
	return "moderation_decisions"
}
