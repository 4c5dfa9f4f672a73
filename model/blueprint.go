package model

import "time"

// BlueprintGoal is a goal definition inside a template. DurationDays is
// turned into a concrete deadline when the blueprint is applied.
type BlueprintGoal struct {
	Title        string   `bson:"title" json:"title" binding:"required"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Type         GoalType `bson:"goal_type" json:"type"`
	DurationDays int      `bson:"duration_days" json:"duration_days"`
}

type Blueprint struct {
	BlueprintID string          `bson:"_id,omitempty" json:"id"`
	UserID      string          `bson:"user_id" json:"user_id"`
	Name        string          `bson:"name" json:"name" binding:"required"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Goals       []BlueprintGoal `bson:"goals" json:"goals"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
}
