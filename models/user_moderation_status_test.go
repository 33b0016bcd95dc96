package models

import (
	"testing"
	"time"
)

func TestSuspendedAtRespectsWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ends := now.Add(24 * time.Hour)
	past := now.Add(-time.Minute)

	tests := []struct {
		name   string
		status UserModerationStatus
		want   bool
	}{
		{"not suspended", UserModerationStatus{}, false},
		{"active window", UserModerationStatus{IsSuspended: true, SuspensionEndsAt: &ends}, true},
		{"elapsed window", UserModerationStatus{IsSuspended: true, SuspensionEndsAt: &past}, false},
		{"open ended", UserModerationStatus{IsSuspended: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.SuspendedAt(now); got != tt.want {
				t.Errorf("SuspendedAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ends := now.Add(24 * time.Hour)
	past := now.Add(-time.Minute)

	tests := []struct {
		name   string
		status UserModerationStatus
		want   bool
	}{
		{"clean record", UserModerationStatus{WarningCount: 2}, true},
		{"banned", UserModerationStatus{IsBanned: true}, false},
		{"suspended", UserModerationStatus{IsSuspended: true, SuspensionEndsAt: &ends}, false},
		{"suspension elapsed", UserModerationStatus{IsSuspended: true, SuspensionEndsAt: &past}, true},
		{"banned and suspension elapsed", UserModerationStatus{IsBanned: true, IsSuspended: true, SuspensionEndsAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.CanAccessAt(now); got != tt.want {
				t.Errorf("CanAccessAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuspensionDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ends := now.Add(72 * time.Hour)

	status := UserModerationStatus{IsSuspended: true, SuspensionEndsAt: &ends}
	days := status.SuspensionDaysRemaining(now)
	if days == nil || *days != 3 {
		t.Errorf("SuspensionDaysRemaining() = %v, want 3", days)
	}

	openEnded := UserModerationStatus{IsSuspended: true}
	if got := openEnded.SuspensionDaysRemaining(now); got != nil {
		t.Errorf("SuspensionDaysRemaining() = %v, want nil for open-ended suspension", got)
	}

	clean := UserModerationStatus{}
	if got := clean.SuspensionDaysRemaining(now); got != nil {
		t.Errorf("SuspensionDaysRemaining() = %v, want nil for clean record", got)
	}
}
