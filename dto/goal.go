package dto

import (
	"time"

	"goalquest/model"
	"goalquest/progress"
)

type GoalResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Type          model.GoalType `json:"type"`
	Deadline      time.Time      `json:"deadline"`
	TimeLeft      string         `json:"time_left"`
	Progress      int            `json:"progress"`
	CurrentStreak int            `json:"current_streak"`
	IsCompleted   bool           `json:"is_completed"`
	IsPublic      bool           `json:"is_public"`
	IsArchived    bool           `json:"is_archived"`
	ParentGoalID  string         `json:"parent_goal_id,omitempty"`
	Reflection    string         `json:"reflection,omitempty"`
	LongestStreak int            `json:"longest_streak"`
	CreatedAt     time.Time      `json:"created_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
}

// ToGoalResponse maps a goal and its tasks to the API shape, computing
// the derived progress fields.
func ToGoalResponse(goal *model.Goal, tasks []*model.Task) GoalResponse {
	response := GoalResponse{
		ID:            goal.GoalID,
		Title:         goal.Title,
		Description:   goal.Description,
		Type:          goal.Type,
		Deadline:      goal.Deadline,
		TimeLeft:      progress.TimeLeft(goal.Deadline, time.Now()),
		Progress:      progress.Completion(tasks),
		CurrentStreak: progress.CurrentStreak(tasks),
		IsCompleted:   goal.IsCompleted,
		IsPublic:      goal.IsPublic,
		IsArchived:    goal.IsArchived,
		ParentGoalID:  goal.ParentGoalID,
		Reflection:    goal.Reflection,
		CreatedAt:     goal.CreatedAt,
		CompletedAt:   goal.CompletedAt,
	}

	response.LongestStreak = response.CurrentStreak
	if goal.LongestStreak != nil && *goal.LongestStreak > response.LongestStreak {
		response.LongestStreak = *goal.LongestStreak
	}
	return response
}

// ToGoalResponses maps each goal using the tasks that belong to it.
func ToGoalResponses(goals []*model.Goal, tasksByGoal map[string][]*model.Task) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal, tasksByGoal[goal.GoalID])
	}
	return responses
}
