package dto

import (
	"time"

	"goalquest/model"
	"goalquest/progress"
)

type TaskResponse struct {
	ID              string           `json:"id"`
	GoalID          string           `json:"goal_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	ScheduledDate   time.Time        `json:"scheduled_date"`
	TimeOfDay       model.TimeOfDay  `json:"time_of_day"`
	IsCompleted     bool             `json:"is_completed"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	CompletedOnTime bool             `json:"completed_on_time"`
	IsRepeating     bool             `json:"is_repeating"`
	RepeatType      model.RepeatType `json:"repeat_type,omitempty"`
	RepeatUntil     *time.Time       `json:"repeat_until,omitempty"`
	ParentTaskID    string           `json:"parent_task_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ToTaskResponse maps a task to the API shape. Tasks without an explicit
// display bucket report the one derived from their scheduled hour.
func ToTaskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:              task.TaskID,
		GoalID:          task.GoalID,
		Title:           task.Title,
		Description:     task.Description,
		ScheduledDate:   task.ScheduledDate,
		IsCompleted:     task.IsCompleted,
		CompletedAt:     task.CompletedAt,
		CompletedOnTime: task.CompletedOnTime,
		IsRepeating:     task.IsRepeating,
		RepeatType:      task.RepeatType,
		RepeatUntil:     task.RepeatUntil,
		ParentTaskID:    task.ParentTaskID,
		CreatedAt:       task.CreatedAt,
	}
	if task.TimeOfDay != nil {
		response.TimeOfDay = *task.TimeOfDay
	} else {
		response.TimeOfDay = progress.HourBucket(task.ScheduledDate)
	}
	return response
}

func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

// DayPlanBucket is one section of the day view, in fixed display order.
type DayPlanBucket struct {
	TimeOfDay model.TimeOfDay `json:"time_of_day"`
	Tasks     []TaskResponse  `json:"tasks"`
}

func ToDayPlan(buckets []progress.Bucket) []DayPlanBucket {
	plan := make([]DayPlanBucket, len(buckets))
	for i, bucket := range buckets {
		plan[i] = DayPlanBucket{
			TimeOfDay: bucket.TimeOfDay,
			Tasks:     ToTaskResponses(bucket.Tasks),
		}
	}
	return plan
}
