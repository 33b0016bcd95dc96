package models

import "time"

// Appeal status values. pending -> approved|rejected, exactly once.
const (
	AppealStatusPending  = "pending"
	AppealStatusApproved = "approved"
	AppealStatusRejected = "rejected"
)

// ModerationAppeal represents the moderation_appeals table.
type ModerationAppeal struct {
	AppealID    int        `gorm:"primaryKey;column:appeal_id" json:"appeal_id"`
	UserID      int        `gorm:"column:user_id" json:"user_id"`
	ActionID    int        `gorm:"column:action_id" json:"action_id"`
	Reason      string     `gorm:"column:reason" json:"reason"`
	Status      string     `gorm:"column:status" json:"status"`
	ReviewedBy  *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewNotes *string    `gorm:"column:review_notes" json:"review_notes,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`

	// Relations
	User     User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action   ModerationAction `gorm:"foreignKey:ActionID;references:ActionID" json:"action,omitempty"`
	Reviewer *User            `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

func (ModerationAppeal) TableName() string {
	return "moderation_appeals"
}

func (a *ModerationAppeal) IsPending() bool {
	return a.Status == AppealStatusPending
}

func (a *ModerationAppeal) IsApproved() bool {
	return a.Status == AppealStatusApproved
}

func (a *ModerationAppeal) IsRejected() bool {
	return a.Status == AppealStatusRejected
}
