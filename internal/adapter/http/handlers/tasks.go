package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/mapper"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/validation"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor := middleware.GetActor(c)

	input := domain.ListTasksInput{
		IncludeArchived: c.Query("include_archived") == "true",
	}
	if status := c.Query("status"); status != "" {
		filter := domain.TaskStatusFilter(status)
		if filter != domain.TaskFilterActive && filter != domain.TaskFilterFuture && filter != domain.TaskFilterExpired {
			respondBadRequest(c, apierrors.MsgInvalidPayload)
			return
		}
		input.Status = &filter
	}

	tasks, err := h.taskService.List(c.Request.Context(), actor, input)
	if err != nil {
		respondServiceError(c, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), middleware.GetActor(c), taskID)
	if err != nil {
		respondServiceError(c, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItemWithProgress(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), taskID, input)
	if err != nil {
		respondServiceError(c, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ArchiveTask(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	if err := h.taskService.Archive(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err, "failed to archive task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) UnarchiveTask(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	task, err := h.taskService.Unarchive(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, "failed to unarchive task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	if err := h.taskService.ForceDelete(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err, "failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CreateVariant(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	var req dto.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	variant, err := h.taskService.CreateVariant(c.Request.Context(), taskID, domain.CreateVariantInput{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Position:    req.Position,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create variant")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToVariantItem(variant))
}

func (h *TaskHandler) UpdateVariant(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}
	variantID := parseIDParam(c, "variantId")
	if variantID == 0 {
		return
	}

	var req dto.UpdateVariantRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	input, err := validation.BuildUpdateVariantInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	variant, err := h.taskService.UpdateVariant(c.Request.Context(), taskID, variantID, input)
	if err != nil {
		respondServiceError(c, err, "failed to update variant")
		return
	}

	c.JSON(http.StatusOK, mapper.ToVariantItem(variant))
}

func (h *TaskHandler) DeleteVariant(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}
	variantID := parseIDParam(c, "variantId")
	if variantID == 0 {
		return
	}

	if err := h.taskService.DeleteVariant(c.Request.Context(), taskID, variantID); err != nil {
		respondServiceError(c, err, "failed to delete variant")
		return
	}

	c.Status(http.StatusNoContent)
}
