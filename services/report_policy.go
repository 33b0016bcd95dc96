package services

import "tools-directory-api/models"

// ReasonPolicy is the report taxonomy: the reason codes the intake accepts
// and the queue priority each code maps to. Priorities are fixed at report
// creation and never recomputed, so the policy is versioned to make audits
// of historical queue entries possible.
type ReasonPolicy struct {
	Version    int
	Priorities map[string]string
	Subjects   []string
}

// DefaultReasonPolicy is the taxonomy currently enforced at intake.
var DefaultReasonPolicy = ReasonPolicy{
	Version: 1,
	Priorities: map[string]string{
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
	},
	Subjects: []string{"Tool", "Comment", "ToolReview"},
}

func (p ReasonPolicy) KnowsReason(reason string) bool {
	_, ok := p.Priorities[reason]
	return ok
}

func (p ReasonPolicy) KnowsSubject(subjectType string) bool {
	for _, s := range p.Subjects {
		if s == subjectType {
			return true
		}
	}
	return false
}

// PriorityFor returns the queue priority for a reason code, defaulting to
// medium for reasons the table does not rank explicitly.
func (p ReasonPolicy) PriorityFor(reason string) string {
	if priority, ok := p.Priorities[reason]; ok {
		return priority
	}
	return models.PriorityMedium
}

func validPriority(priority string) bool {
	switch priority {
	case models.PriorityUrgent, models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return true
	}
	return false
}
