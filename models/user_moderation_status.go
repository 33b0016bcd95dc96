package models

import "time"

// UserModerationStatus represents the user_moderation_status table, one row
// per sanctioned user (created lazily on first sanction). It is the single
// source of truth for platform access decisions.
type UserModerationStatus struct {
	StatusID         int        `gorm:"primaryKey;column:status_id" json:"status_id"`
	UserID           int        `gorm:"column:user_id;unique" json:"user_id"`
	WarningCount     int        `gorm:"column:warning_count" json:"warning_count"`
	IsSuspended      bool       `gorm:"column:is_suspended" json:"is_suspended"`
	SuspensionEndsAt *time.Time `gorm:"column:suspension_ends_at" json:"suspension_ends_at,omitempty"`
	SuspensionReason *string    `gorm:"column:suspension_reason" json:"suspension_reason,omitempty"`
	IsBanned         bool       `gorm:"column:is_banned" json:"is_banned"`
	BanReason        *string    `gorm:"column:ban_reason" json:"ban_reason,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserModerationStatus) TableName() string {
	return "user_moderation_status"
}

// SuspendedAt reports whether the suspension is in effect at the given
// instant. A suspension with no end date never expires on its own.
func (s *UserModerationStatus) SuspendedAt(now time.Time) bool {
	if !s.IsSuspended {
		return false
	}
	return s.SuspensionEndsAt == nil || s.SuspensionEndsAt.After(now)
}

func (s *UserModerationStatus) Suspended() bool {
	return s.SuspendedAt(time.Now())
}

func (s *UserModerationStatus) Banned() bool {
	return s.IsBanned
}

// CanAccessAt reports whether the user may act on the platform at the given
// instant. Bans and active suspensions both block access.
func (s *UserModerationStatus) CanAccessAt(now time.Time) bool {
	return !s.IsBanned && !s.SuspendedAt(now)
}

func (s *UserModerationStatus) CanAccess() bool {
	return s.CanAccessAt(time.Now())
}

// SuspensionDaysRemaining returns the whole days left on an active
// suspension, or nil when the user is not suspended or the suspension is
// open-ended.
func (s *UserModerationStatus) SuspensionDaysRemaining(now time.Time) *int {
	if !s.SuspendedAt(now) || s.SuspensionEndsAt == nil {
		return nil
	}
	days := int(s.SuspensionEndsAt.Sub(now).Hours() / 24)
	return &days
}
