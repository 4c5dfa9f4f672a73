package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/dto"
	"goalquest/model"
	"goalquest/usecase"
	"goalquest/utils"
)

type BlueprintsHandler struct {
	service *usecase.BlueprintsService
}

func NewBlueprintsHandler(service *usecase.BlueprintsService) *BlueprintsHandler {
	return &BlueprintsHandler{service: service}
}

// ListBlueprints returns the built-in catalog plus the user's own
// blueprints.
func (h *BlueprintsHandler) ListBlueprints(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	blueprints, err := h.service.List(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch blueprints")
		return
	}

	utils.Success(c, gin.H{"blueprints": dto.ToBlueprintResponses(blueprints)})
}

func (h *BlueprintsHandler) CreateBlueprint(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name        string                `json:"name" binding:"required"`
		Description string                `json:"description"`
		Goals       []model.BlueprintGoal `json:"goals" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	blueprint := &model.Blueprint{
		UserID:      userID.(string),
		Name:        req.Name,
		Description: req.Description,
		Goals:       req.Goals,
	}

	if err := h.service.Create(c.Request.Context(), blueprint); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, dto.ToBlueprintResponse(blueprint))
}

func (h *BlueprintsHandler) DeleteBlueprint(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	err := h.service.Delete(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		switch err.Error() {
		case "built-in blueprints cannot be deleted":
			utils.Forbidden(c, err.Error())
		case "blueprint not found":
			utils.NotFound(c, "Blueprint not found")
		default:
			utils.InternalError(c, "Failed to delete blueprint")
		}
		return
	}

	utils.Success(c, gin.H{"message": "Blueprint deleted"})
}

// PreviewBlueprint shows how heavy applying the whole batch would be
// before anything is created.
func (h *BlueprintsHandler) PreviewBlueprint(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	advisory, err := h.service.Preview(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if err.Error() == "blueprint not found" {
			utils.NotFound(c, "Blueprint not found")
			return
		}
		utils.InternalError(c, "Failed to preview blueprint")
		return
	}

	utils.Success(c, advisory)
}

// ApplyBlueprint creates every goal in the blueprint in one batch and
// returns them with the batch workload advisory.
func (h *BlueprintsHandler) ApplyBlueprint(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goals, advisory, err := h.service.Apply(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if err.Error() == "blueprint not found" {
			utils.NotFound(c, "Blueprint not found")
			return
		}
		utils.InternalError(c, "Failed to apply blueprint")
		return
	}

	responses := make([]dto.GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = dto.ToGoalResponse(goal, nil)
	}

	utils.Created(c, gin.H{
		"message":  "Blueprint applied",
		"goals":    responses,
		"advisory": advisory,
	})
}
