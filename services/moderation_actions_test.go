package services

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"tools-directory-api/models"
)

func TestWarnUserIncrementsWarningCount(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .user_moderation_status. WHERE user_id = \?.*FOR UPDATE`),
			columns: []string{"status_id", "user_id", "warning_count", "is_suspended", "suspension_ends_at", "suspension_reason", "is_banned", "ban_reason", "created_at", "updated_at"},
			rows: [][]driver.Value{
				{int64(1), int64(8), int64(1), false, nil, nil, false, nil, now, now},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .user_moderation_status. SET .updated_at.=\?,.warning_count.=warning_count \+ 1 WHERE user_id = \?`),
			args:    []driver.Value{now, int64(8)},
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .moderation_actions."),
			result:  scriptedResult{lastInsertID: 25, rowsAffected: 1},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := newTestModerationService(gormDB, now)
	reportID := 3
	action, err := svc.WarnUser(context.Background(), 9, 8, "first offense", &reportID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Action != models.ActionUserWarn {
		t.Errorf("action = %q, want user_warn", action.Action)
	}
	if action.UserID == nil || *action.UserID != 8 {
		t.Errorf("user_id = %v, want 8", action.UserID)
	}
	if action.ActionID != 25 {
		t.Errorf("action id = %d, want 25", action.ActionID)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestRemoveContentLogsActionRow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .moderation_actions. \(.moderator_id.,.report_id.,.user_id.,.actionable_type.,.actionable_id.,.action.,.reason.,.duration_days.,.notes.,.created_at.\)`),
			args:    []driver.Value{int64(9), int64(3), nil, "Tool", int64(42), "content_remove", "spam links", nil, nil, now},
			result:  scriptedResult{lastInsertID: 31, rowsAffected: 1},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := newTestModerationService(gormDB, now)
	reportID := 3
	action, err := svc.RemoveContent(context.Background(), 9, "Tool", 42, "spam links", &reportID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !action.IsContentRemoval() {
		t.Errorf("action = %q, want content_remove", action.Action)
	}
	if action.ActionableType == nil || *action.ActionableType != "Tool" {
		t.Errorf("actionable_type = %v, want Tool", action.ActionableType)
	}
	if action.ActionableID == nil || *action.ActionableID != 42 {
		t.Errorf("actionable_id = %v, want 42", action.ActionableID)
	}
	if action.ReportID == nil || *action.ReportID != 3 {
		t.Errorf("report_id = %v, want 3", action.ReportID)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestHideContentLogsActionRow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .moderation_actions."),
			args:    []driver.Value{int64(9), nil, nil, "Comment", int64(7), "content_hide", "awaiting review", nil, nil, now},
			result:  scriptedResult{lastInsertID: 32, rowsAffected: 1},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := newTestModerationService(gormDB, now)
	action, err := svc.HideContent(context.Background(), 9, "Comment", 7, "awaiting review", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !action.IsContentHide() {
		t.Errorf("action = %q, want content_hide", action.Action)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}
