package model

import "time"

// RuleConditions is the typed condition set of an adaptation rule. A nil
// field is a wildcard that matches any context. Extra carries condition keys
// this version does not recognize; they are ignored during matching so old
// engines stay compatible with newer rule definitions.
type RuleConditions struct {
	DeviceType *DeviceType       `json:"device_type,omitempty" bson:"deviceType,omitempty"`
	TimeOfDay  *TimeOfDay        `json:"time_of_day,omitempty" bson:"timeOfDay,omitempty"`
	UserType   *string           `json:"user_type,omitempty" bson:"userType,omitempty"`
	Extra      map[string]string `json:"extra,omitempty" bson:"extra,omitempty"`
}

// RuleActions describes what a matched rule does to the layout
type RuleActions struct {
	ShowComponents []string `json:"show_components,omitempty" bson:"showComponents,omitempty"`
	Theme          string   `json:"theme,omitempty" bson:"theme,omitempty"`
	Layout         string   `json:"layout,omitempty" bson:"layout,omitempty"`
}

// AdaptationRule is a named, prioritized condition->action mapping controlling
// UI presentation. Rules are owned by the rule store; the engine only reads them.
type AdaptationRule struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	Conditions  RuleConditions `json:"conditions" bson:"conditions"`
	Actions     RuleActions    `json:"actions" bson:"actions"`
	Priority    int            `json:"priority" bson:"priority"` // higher wins
	Enabled     bool           `json:"enabled" bson:"enabled"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// MatchResult is one rule's outcome against a context
type MatchResult struct {
	RuleID   string      `json:"rule_id"`
	Matched  bool        `json:"matched"`
	Priority int         `json:"priority"`
	Actions  RuleActions `json:"actions,omitempty"`
}
