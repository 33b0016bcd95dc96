package services

import (
	"testing"

	"tools-directory-api/models"
)

func TestPriorityForRanksReasons(t *testing.T) {
	cases := map[string]string{
		"hate_speech":           models.PriorityUrgent,
		"violent_content":       models.PriorityUrgent,
		"explicit_content":      models.PriorityUrgent,
		"harassment":            models.PriorityHigh,
		"scam":                  models.PriorityHigh,
		"copyright_violation":   models.PriorityHigh,
		"spam":                  models.PriorityMedium,
		"inappropriate_content": models.PriorityMedium,
		"misinformation":        models.PriorityMedium,
		"other":                 models.PriorityMedium,
	}

	for reason, want := range cases {
		if got := DefaultReasonPolicy.PriorityFor(reason); got != want {
			t.Errorf("PriorityFor(%q) = %q, want %q", reason, got, want)
		}
		if !DefaultReasonPolicy.KnowsReason(reason) {
			t.Errorf("KnowsReason(%q) = false, want true", reason)
		}
	}
}

func TestPriorityForDefaultsToMedium(t *testing.T) {
	if got := DefaultReasonPolicy.PriorityFor("something_new"); got != models.PriorityMedium {
		t.Errorf("PriorityFor fallback = %q, want medium", got)
	}
}

func TestKnowsReasonRejectsUnknownCodes(t *testing.T) {
	for _, reason := range []string{"", "rude", "HATE_SPEECH"} {
		if DefaultReasonPolicy.KnowsReason(reason) {
			t.Errorf("KnowsReason(%q) = true, want false", reason)
		}
	}
}

func TestKnowsSubject(t *testing.T) {
	for _, subject := range []string{"Tool", "Comment", "ToolReview"} {
		if !DefaultReasonPolicy.KnowsSubject(subject) {
			t.Errorf("KnowsSubject(%q) = false, want true", subject)
		}
	}
	if DefaultReasonPolicy.KnowsSubject("User") {
		t.Error("KnowsSubject(\"User\") = true, want false")
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 50},
		{-3, 50},
		{1, 1},
		{100, 100},
		{250, 100},
	}
	for _, c := range cases {
		if got := clampLimit(c.in); got != c.want {
			t.Errorf("clampLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
