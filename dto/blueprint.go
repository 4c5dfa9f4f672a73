package dto

import (
	"time"

	"goalquest/model"
)

type BlueprintGoalResponse struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Type         model.GoalType `json:"type"`
	DurationDays int            `json:"duration_days"`
}

type BlueprintResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	IsBuiltin   bool                    `json:"is_builtin"`
	Goals       []BlueprintGoalResponse `json:"goals"`
	CreatedAt   *time.Time              `json:"created_at,omitempty"`
}

func ToBlueprintResponse(blueprint *model.Blueprint) BlueprintResponse {
	goals := make([]BlueprintGoalResponse, len(blueprint.Goals))
	for i, g := range blueprint.Goals {
		goals[i] = BlueprintGoalResponse{
			Title:        g.Title,
			Description:  g.Description,
			Type:         g.Type,
			DurationDays: g.DurationDays,
		}
	}

	response := BlueprintResponse{
		ID:          blueprint.BlueprintID,
		Name:        blueprint.Name,
		Description: blueprint.Description,
		IsBuiltin:   blueprint.UserID == "",
		Goals:       goals,
	}
	if !blueprint.CreatedAt.IsZero() {
		response.CreatedAt = &blueprint.CreatedAt
	}
	return response
}

func ToBlueprintResponses(blueprints []*model.Blueprint) []BlueprintResponse {
	responses := make([]BlueprintResponse, len(blueprints))
	for i, blueprint := range blueprints {
		responses[i] = ToBlueprintResponse(blueprint)
	}
	return responses
}
