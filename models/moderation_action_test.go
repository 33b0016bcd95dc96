package models

import "testing"

func TestActionPredicates(t *testing.T) {
	userID := 8
	days := 7

	suspend := ModerationAction{Action: ActionUserSuspend, UserID: &userID, DurationDays: &days}
	if !suspend.IsUserAction() || !suspend.IsSuspension() || !suspend.IsTemporary() {
		t.Error("suspend with duration should be a temporary user action")
	}

	ban := ModerationAction{Action: ActionUserBan, UserID: &userID}
	if !ban.IsUserAction() || !ban.IsBan() {
		t.Error("ban should be a user action")
	}
	if ban.IsTemporary() {
		t.Error("ban without duration should not be temporary")
	}

	contentType := "Tool"
	contentID := 42
	remove := ModerationAction{Action: ActionContentRemove, ActionableType: &contentType, ActionableID: &contentID}
	if remove.IsUserAction() {
		t.Error("content removal should not be a user action")
	}
	if !remove.IsContentRemoval() {
		t.Error("expected IsContentRemoval for content_remove")
	}

	hide := ModerationAction{Action: ActionContentHide}
	if !hide.IsContentHide() {
		t.Error("expected IsContentHide for content_hide")
	}
}
