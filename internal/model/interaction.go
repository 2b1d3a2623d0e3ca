package model

import "time"

// Interaction is one append-only entry in the interaction log
type Interaction struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	UserID      int64             `json:"user_id" bson:"userId"`
	Action      string            `json:"action" bson:"action"`
	ComponentID string            `json:"component_id,omitempty" bson:"componentId,omitempty"`
	Timestamp   time.Time         `json:"timestamp" bson:"timestamp"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
