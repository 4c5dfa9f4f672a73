package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"goalquest/dto"
	"goalquest/model"
	"goalquest/usecase"
	"goalquest/utils"
)

type GoalsHandler struct {
	service *usecase.GoalsService
	tasks   *usecase.TasksService
}

func NewGoalsHandler(service *usecase.GoalsService, tasks *usecase.TasksService) *GoalsHandler {
	return &GoalsHandler{service: service, tasks: tasks}
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title        string         `json:"title" binding:"required"`
		Description  string         `json:"description"`
		Type         model.GoalType `json:"type" binding:"required"`
		Deadline     time.Time      `json:"deadline" binding:"required"`
		IsPublic     bool           `json:"is_public"`
		ParentGoalID string         `json:"parent_goal_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal := &model.Goal{
		UserID:       userID.(string),
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Deadline:     req.Deadline,
		IsPublic:     req.IsPublic,
		ParentGoalID: req.ParentGoalID,
	}

	advisory, err := h.service.CreateGoal(c.Request.Context(), goal)
	if err != nil {
		if strings.Contains(err.Error(), "invalid") ||
			strings.Contains(err.Error(), "deadline") ||
			strings.Contains(err.Error(), "parent") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{
		"goal":     dto.ToGoalResponse(goal, nil),
		"advisory": advisory,
	})
}

// PreviewWorkload answers "how loaded would this period be" before the
// user commits to a new goal.
func (h *GoalsHandler) PreviewWorkload(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Type     model.GoalType `json:"type" binding:"required"`
		Deadline time.Time      `json:"deadline" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	advisory, err := h.service.PreviewWorkload(c.Request.Context(), userID.(string), req.Type, req.Deadline)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, advisory)
}

func (h *GoalsHandler) ListGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goals, err := h.service.ListActive(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch goals")
		return
	}

	tasksByGoal, err := h.service.TasksByGoal(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, gin.H{"goals": dto.ToGoalResponses(goals, tasksByGoal)})
}

func (h *GoalsHandler) ListArchivedGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goals, err := h.service.ListArchived(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch archived goals")
		return
	}

	tasksByGoal, err := h.service.TasksByGoal(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, gin.H{"goals": dto.ToGoalResponses(goals, tasksByGoal)})
}

// GetGoal returns one goal with its tasks and the derived progress
// detail (streaks, ratio, time left).
func (h *GoalsHandler) GetGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}
	goalID := c.Param("id")

	goal, err := h.service.GoalsRepo.GetGoal(c.Request.Context(), goalID, userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch goal")
		return
	}
	if goal == nil {
		utils.NotFound(c, "Goal not found")
		return
	}

	tasks, err := h.tasks.ListForGoal(c.Request.Context(), goalID, userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	detail, err := h.service.GetGoalDetail(c.Request.Context(), goalID, userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to compute goal detail")
		return
	}

	utils.Success(c, gin.H{
		"goal":   dto.ToGoalResponse(goal, tasks),
		"tasks":  dto.ToTaskResponses(tasks),
		"detail": detail,
	})
}

func (h *GoalsHandler) UpdateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Type        model.GoalType `json:"type"`
		Deadline    time.Time      `json:"deadline"`
		IsPublic    bool           `json:"is_public"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.Goal{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Deadline:    req.Deadline,
		IsPublic:    req.IsPublic,
	}

	goal, err := h.service.UpdateGoal(c.Request.Context(), c.Param("id"), userID.(string), updates)
	if err != nil {
		if err.Error() == "goal not found" {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	tasks, err := h.tasks.ListForGoal(c.Request.Context(), goal.GoalID, userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}
	utils.Success(c, gin.H{"goal": dto.ToGoalResponse(goal, tasks)})
}

func (h *GoalsHandler) CompleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Reflection string `json:"reflection"`
	}
	// Reflection is optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	goal, err := h.service.CompleteGoal(c.Request.Context(), c.Param("id"), userID.(string), req.Reflection)
	if err != nil {
		switch err.Error() {
		case "goal not found":
			utils.NotFound(c, "Goal not found")
		case "goal is already completed":
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "Failed to complete goal")
		}
		return
	}

	tasks, err := h.tasks.ListForGoal(c.Request.Context(), goal.GoalID, userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}
	utils.Success(c, gin.H{
		"message": "Goal completed",
		"goal":    dto.ToGoalResponse(goal, tasks),
	})
}

func (h *GoalsHandler) ArchiveGoal(c *gin.Context) {
	h.setArchived(c, true, "Goal archived")
}

func (h *GoalsHandler) UnarchiveGoal(c *gin.Context) {
	h.setArchived(c, false, "Goal unarchived")
}

func (h *GoalsHandler) setArchived(c *gin.Context, archived bool, message string) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	err := h.service.SetArchived(c.Request.Context(), c.Param("id"), userID.(string), archived)
	if err != nil {
		if err.Error() == "goal not found" {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.InternalError(c, "Failed to update goal")
		return
	}

	utils.Success(c, gin.H{"message": message})
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	err := h.service.DeleteGoal(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.InternalError(c, "Failed to delete goal")
		return
	}

	utils.Success(c, gin.H{"message": "Goal deleted"})
}
