package models

import "time"

// Enforcement action codes. Content actions are pure audit entries; user
// actions also mutate the target's moderation status row.
const (
	ActionContentRemove = "content_remove"
	ActionContentHide   = "content_hide"
	ActionUserWarn      = "user_warn"
	ActionUserSuspend   = "user_suspend"
	ActionUserBan       = "user_ban"
	ActionUserRestore   = "user_restore"
)

// ModerationAction represents the moderation_actions table. Rows are
// append-only; nothing in the application updates or deletes them.
type ModerationAction struct {
	ActionID       int       `gorm:"primaryKey;column:action_id" json:"action_id"`
	ModeratorID    int       `gorm:"column:moderator_id" json:"moderator_id"`
	ReportID       *int      `gorm:"column:report_id" json:"report_id,omitempty"`
	UserID         *int      `gorm:"column:user_id" json:"user_id,omitempty"`
	ActionableType *string   `gorm:"column:actionable_type" json:"actionable_type,omitempty"`
	ActionableID   *int      `gorm:"column:actionable_id" json:"actionable_id,omitempty"`
	Action         string    `gorm:"column:action" json:"action"`
	Reason         string    `gorm:"column:reason" json:"reason"`
	DurationDays   *int      `gorm:"column:duration_days" json:"duration_days,omitempty"`
	Notes          *string   `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Moderator  User           `gorm:"foreignKey:ModeratorID" json:"moderator,omitempty"`
	Report     *ContentReport `gorm:"foreignKey:ReportID;references:ReportID" json:"report,omitempty"`
	TargetUser *User          `gorm:"foreignKey:UserID" json:"target_user,omitempty"`
}

func (ModerationAction) TableName() string {
	return "moderation_actions"
}

func (a *ModerationAction) IsContentRemoval() bool {
	return a.Action == ActionContentRemove
}

func (a *ModerationAction) IsContentHide() bool {
	return a.Action == ActionContentHide
}

func (a *ModerationAction) IsUserAction() bool {
	switch a.Action {
	case ActionUserWarn, ActionUserSuspend, ActionUserBan, ActionUserRestore:
		return true
	}
	return false
}

func (a *ModerationAction) IsSuspension() bool {
	return a.Action == ActionUserSuspend
}

func (a *ModerationAction) IsBan() bool {
	return a.Action == ActionUserBan
}

// IsTemporary reports whether the action is a time-bounded suspension,
// i.e. one that carries a duration. Appeals against temporary actions are
// auto-reversed on approval; permanent ones are not.
func (a *ModerationAction) IsTemporary() bool {
	return a.DurationDays != nil
}
