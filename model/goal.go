package model

import "time"

type GoalType string

const (
	GoalTypeShort  GoalType = "short"
	GoalTypeMedium GoalType = "medium"
	GoalTypeLong   GoalType = "long"
)

type Goal struct {
	GoalID        string     `bson:"_id,omitempty" json:"id"`
	UserID        string     `bson:"user_id" json:"user_id"`
	Title         string     `bson:"title" json:"title" binding:"required"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	Type          GoalType   `bson:"goal_type" json:"type"`
	Deadline      time.Time  `bson:"deadline" json:"deadline"`
	IsCompleted   bool       `bson:"is_completed" json:"is_completed"`
	IsPublic      bool       `bson:"is_public" json:"is_public"`
	IsArchived    bool       `bson:"is_archived" json:"is_archived"`
	ParentGoalID  string     `bson:"parent_goal_id,omitempty" json:"parent_goal_id,omitempty"`
	Reflection    string     `bson:"reflection,omitempty" json:"reflection,omitempty"`
	LongestStreak *int       `bson:"longest_streak,omitempty" json:"longest_streak,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	CompletedAt   *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// ValidGoalType reports whether t is one of the three duration classes.
func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeShort, GoalTypeMedium, GoalTypeLong:
		return true
	}
	return false
}
