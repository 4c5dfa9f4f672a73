package model

import "time"

type TimeOfDay string
type RepeatType string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNotSet    TimeOfDay = "not_set"

	RepeatNone          RepeatType = "none"
	RepeatDaily         RepeatType = "daily"
	RepeatEveryOtherDay RepeatType = "every_other_day"
	RepeatWeekly        RepeatType = "weekly"
	RepeatMonthly       RepeatType = "monthly"
)

type Task struct {
	TaskID        string    `bson:"_id,omitempty" json:"id"`
	GoalID        string    `bson:"goal_id" json:"goal_id" binding:"required"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Title         string    `bson:"title" json:"title" binding:"required"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	ScheduledDate time.Time `bson:"scheduled_date" json:"scheduled_date"`
	// TimeOfDay is the user-chosen display bucket. nil means the field was
	// never set, which is distinct from the explicit "not_set" choice.
	TimeOfDay       *TimeOfDay `bson:"time_of_day,omitempty" json:"time_of_day,omitempty"`
	IsCompleted     bool       `bson:"is_completed" json:"is_completed"`
	CompletedAt     *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CompletedOnTime bool       `bson:"completed_on_time" json:"completed_on_time"`
	IsRepeating     bool       `bson:"is_repeating" json:"is_repeating"`
	RepeatType      RepeatType `bson:"repeat_type,omitempty" json:"repeat_type,omitempty"`
	RepeatUntil     *time.Time `bson:"repeat_until,omitempty" json:"repeat_until,omitempty"`
	ParentTaskID    string     `bson:"parent_task_id,omitempty" json:"parent_task_id,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
}

func ValidTimeOfDay(t TimeOfDay) bool {
	switch t {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNotSet:
		return true
	}
	return false
}

func ValidRepeatType(r RepeatType) bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatEveryOtherDay, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// IsRecurring classifies a task as recurring for statistics: either the
// repeating flag is set, the task was spawned from another occurrence, or
// a concrete repeat pattern is present.
func (t *Task) IsRecurring() bool {
	if t.IsRepeating || t.ParentTaskID != "" {
		return true
	}
	return t.RepeatType != "" && t.RepeatType != RepeatNone
}
