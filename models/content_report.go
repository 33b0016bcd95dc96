package models

import "time"

// Report status values. Transitions are one-directional:
// pending -> under_review -> resolved|dismissed.
const (
	ReportStatusPending     = "pending"
	ReportStatusUnderReview = "under_review"
	ReportStatusResolved    = "resolved"
	ReportStatusDismissed   = "dismissed"
)

// ContentReport represents the content_reports table
type ContentReport struct {
	ReportID       int       `gorm:"primaryKey;column:report_id" json:"report_id"`
	Reference      string    `gorm:"column:reference;unique" json:"reference"`
	UserID         int       `gorm:"column:user_id" json:"user_id"`
	ReportedUserID *int      `gorm:"column:reported_user_id" json:"reported_user_id,omitempty"`
	ReportableType string    `gorm:"column:reportable_type" json:"reportable_type"`
	ReportableID   int       `gorm:"column:reportable_id" json:"reportable_id"`
	Reason         string    `gorm:"column:reason" json:"reason"`
	Description    *string   `gorm:"column:description" json:"description,omitempty"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Reporter     User                `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
	ReportedUser *User               `gorm:"foreignKey:ReportedUserID" json:"reported_user,omitempty"`
	QueueItem    *ModerationQueue    `gorm:"foreignKey:ReportID" json:"queue_item,omitempty"`
	Decision     *ModerationDecision `gorm:"foreignKey:ReportID" json:"decision,omitempty"`
}

func (ContentReport) TableName() string {
	return "content_reports"
}

func (r *ContentReport) IsPending() bool {
	return r.Status == ReportStatusPending
}

func (r *ContentReport) IsUnderReview() bool {
	return r.Status == ReportStatusUnderReview
}

// IsOpen reports whether the report has not reached a terminal status yet.
func (r *ContentReport) IsOpen() bool {
	return r.Status == ReportStatusPending || r.Status == ReportStatusUnderReview
}

func (r *ContentReport) IsResolved() bool {
	return r.Status == ReportStatusResolved
}

func (r *ContentReport) IsDismissed() bool {
	return r.Status == ReportStatusDismissed
}
