package models

import "testing"

func TestPriorityRankOrdersBands(t *testing.T) {
	if PriorityRank(PriorityUrgent) >= PriorityRank(PriorityHigh) {
		t.Error("urgent should rank before high")
	}
	if PriorityRank(PriorityHigh) >= PriorityRank(PriorityMedium) {
		t.Error("high should rank before medium")
	}
	if PriorityRank(PriorityMedium) >= PriorityRank(PriorityLow) {
		t.Error("medium should rank before low")
	}
	if PriorityRank("nonsense") != PriorityRank(PriorityLow) {
		t.Error("unknown priorities should rank with low")
	}
}

func TestQueueEntryPredicates(t *testing.T) {
	entry := ModerationQueue{Priority: PriorityUrgent}
	if !entry.IsUrgent() {
		t.Error("expected IsUrgent for urgent entry")
	}
	if entry.IsAssigned() {
		t.Error("entry without assignee should not be assigned")
	}

	moderator := 9
	entry.AssignedTo = &moderator
	if !entry.IsAssigned() {
		t.Error("expected IsAssigned once assigned_to is set")
	}
}
