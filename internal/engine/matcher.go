package engine

import (
	"sort"

	"adaptiveui/internal/model"
)

// MatchContext carries the context fields rule conditions are evaluated
// against. UserType comes from the customer-status collaborator rather than
// the device context and is compared as an opaque string.
type MatchContext struct {
	DeviceType model.DeviceType
	TimeOfDay  model.TimeOfDay
	UserType   string
}

// MatchRules evaluates every enabled rule against the context and returns the
// matches ordered by priority descending. Rules with equal priority keep
// their store order (stable sort). An empty result means no rule matched,
// which is not an error.
func MatchRules(mc MatchContext, rules []model.AdaptationRule) []model.MatchResult {
	matched := make([]model.MatchResult, 0, len(rules))
	for _, r := range rules {
		if !r.Enabled || !ruleMatches(mc, r.Conditions) {
			continue
		}
		matched = append(matched, model.MatchResult{
			RuleID:   r.ID,
			Matched:  true,
			Priority: r.Priority,
			Actions:  r.Actions,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})
	return matched
}

// MatchAll returns every enabled rule with its match status, for callers that
// need visibility into non-matching rules. Order follows the store.
func MatchAll(mc MatchContext, rules []model.AdaptationRule) []model.MatchResult {
	results := make([]model.MatchResult, 0, len(rules))
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		res := model.MatchResult{
			RuleID:   r.ID,
			Matched:  ruleMatches(mc, r.Conditions),
			Priority: r.Priority,
		}
		if res.Matched {
			res.Actions = r.Actions
		}
		results = append(results, res)
	}
	return results
}

// ruleMatches checks the typed condition fields. A nil or empty field is a
// wildcard. Keys in Conditions.Extra are not recognized by this version and
// are deliberately ignored so rules stay forward-compatible.
func ruleMatches(mc MatchContext, c model.RuleConditions) bool {
	if c.DeviceType != nil && *c.DeviceType != "" && *c.DeviceType != mc.DeviceType {
		return false
	}
	if c.TimeOfDay != nil && *c.TimeOfDay != "" && *c.TimeOfDay != mc.TimeOfDay {
		return false
	}
	if c.UserType != nil && *c.UserType != "" && *c.UserType != mc.UserType {
		return false
	}
	return true
}
