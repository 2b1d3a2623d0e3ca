package model

import "time"

// Component is a reusable UI building block from the component library
type Component struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Type         string    `json:"type" bson:"type"` // button, widget, form, card
	Description  string    `json:"description" bson:"description"`
	HTMLTemplate string    `json:"html" bson:"htmlTemplate"`
	CSSStyles    string    `json:"css" bson:"cssStyles"`
	JSScript     string    `json:"js,omitempty" bson:"jsScript,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
