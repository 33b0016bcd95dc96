package models

import "time"

type Notification struct {
	NotificationID  uint       `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID          int        `gorm:"column:user_id" json:"user_id"`
	Title           string     `gorm:"column:title" json:"title"`
	Message         string     `gorm:"column:message" json:"message"`
	Type            string     `gorm:"column:type" json:"type"` // info|success|warning|error
	RelatedReportID *int       `gorm:"column:related_report_id" json:"related_report_id,omitempty"`
	RelatedActionID *int       `gorm:"column:related_action_id" json:"related_action_id,omitempty"`
	IsRead          bool       `gorm:"column:is_read" json:"is_read"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
