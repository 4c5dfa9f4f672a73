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

type TasksHandler struct {
	service *usecase.TasksService
}

func NewTasksHandler(service *usecase.TasksService) *TasksHandler {
	return &TasksHandler{service: service}
}

func (h *TasksHandler) CreateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		GoalID        string           `json:"goal_id" binding:"required"`
		Title         string           `json:"title" binding:"required"`
		Description   string           `json:"description"`
		ScheduledDate time.Time        `json:"scheduled_date" binding:"required"`
		TimeOfDay     *model.TimeOfDay `json:"time_of_day"`
		IsRepeating   bool             `json:"is_repeating"`
		RepeatType    model.RepeatType `json:"repeat_type"`
		RepeatUntil   *time.Time       `json:"repeat_until"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := &model.Task{
		GoalID:        req.GoalID,
		UserID:        userID.(string),
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		TimeOfDay:     req.TimeOfDay,
		IsRepeating:   req.IsRepeating,
		RepeatType:    req.RepeatType,
		RepeatUntil:   req.RepeatUntil,
	}

	if err := h.service.CreateTask(c.Request.Context(), task); err != nil {
		if err.Error() == "goal not found" {
			utils.NotFound(c, "Goal not found")
			return
		}
		if strings.Contains(err.Error(), "invalid") ||
			strings.Contains(err.Error(), "required") ||
			strings.Contains(err.Error(), "archived") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToTaskResponse(task))
}

func (h *TasksHandler) ListTasks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var (
		tasks []*model.Task
		err   error
	)
	switch {
	case c.Query("goal_id") != "":
		tasks, err = h.service.ListForGoal(c.Request.Context(), c.Query("goal_id"), userID.(string))
	case c.Query("date") != "":
		day, parseErr := time.Parse("2006-01-02", c.Query("date"))
		if parseErr != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		tasks, err = h.service.ListForDay(c.Request.Context(), userID.(string), day)
	default:
		tasks, err = h.service.ListForUser(c.Request.Context(), userID.(string))
	}
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, gin.H{"tasks": dto.ToTaskResponses(tasks)})
}

// TodayPlan returns the day's tasks grouped into morning, afternoon,
// evening, and not_set sections. An optional ?date=YYYY-MM-DD shows
// another day.
func (h *TasksHandler) TodayPlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	buckets, err := h.service.TasksForDay(c.Request.Context(), userID.(string), day)
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, gin.H{
		"date": day.UTC().Format("2006-01-02"),
		"plan": dto.ToDayPlan(buckets),
	})
}

func (h *TasksHandler) UpdateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title         string           `json:"title"`
		Description   string           `json:"description"`
		ScheduledDate time.Time        `json:"scheduled_date"`
		TimeOfDay     *model.TimeOfDay `json:"time_of_day"`
		RepeatType    model.RepeatType `json:"repeat_type"`
		RepeatUntil   *time.Time       `json:"repeat_until"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.Task{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		TimeOfDay:     req.TimeOfDay,
		RepeatType:    req.RepeatType,
		RepeatUntil:   req.RepeatUntil,
	}

	task, err := h.service.UpdateTask(c.Request.Context(), c.Param("id"), userID.(string), updates)
	if err != nil {
		if err.Error() == "task not found" {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TasksHandler) CompleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	task, err := h.service.CompleteTask(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		switch err.Error() {
		case "task not found":
			utils.NotFound(c, "Task not found")
		case "task is already completed":
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "Failed to complete task")
		}
		return
	}

	utils.Success(c, gin.H{
		"message": "Task completed",
		"task":    dto.ToTaskResponse(task),
	})
}

func (h *TasksHandler) UncompleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	task, err := h.service.UncompleteTask(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		switch err.Error() {
		case "task not found":
			utils.NotFound(c, "Task not found")
		case "task is not completed":
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "Failed to update task")
		}
		return
	}

	utils.Success(c, gin.H{
		"message": "Task reopened",
		"task":    dto.ToTaskResponse(task),
	})
}

func (h *TasksHandler) DeleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	err := h.service.DeleteTask(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to delete task")
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted"})
}
