package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/mapper"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
)

type StatCategoryHandler struct {
	statCategoryService ports.StatCategoryService
}

func NewStatCategoryHandler(statCategoryService ports.StatCategoryService) *StatCategoryHandler {
	return &StatCategoryHandler{statCategoryService: statCategoryService}
}

func (h *StatCategoryHandler) ListStatCategories(c *gin.Context) {
	summaries, err := h.statCategoryService.ListSummaries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to list stat categories")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatCategorySummaryItems(summaries))
}

func (h *StatCategoryHandler) ManageStatCategories(c *gin.Context) {
	categories, err := h.statCategoryService.Manage(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to load stat categories")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatCategoryItems(categories))
}

func (h *StatCategoryHandler) CreateStatCategory(c *gin.Context) {
	var req dto.CreateStatCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	input := domain.CreateStatCategoryInput{
		Name:        name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	for _, component := range req.Components {
		input.Components = append(input.Components, buildComponentInput(component))
	}

	category, err := h.statCategoryService.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "failed to create stat category")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToStatCategoryItem(category))
}

func (h *StatCategoryHandler) UpdateStatCategory(c *gin.Context) {
	categoryID := parseIDParam(c, "id")
	if categoryID == 0 {
		return
	}

	var req dto.UpdateStatCategoryRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			respondBadRequest(c, apierrors.MsgInvalidPayload)
			return
		}
		name = &value
	}

	_, descriptionSet := raw["description"]
	_, iconSet := raw["icon"]

	category, err := h.statCategoryService.Update(c.Request.Context(), categoryID, domain.UpdateStatCategoryInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Icon:           req.Icon,
		IconSet:        iconSet,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update stat category")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatCategoryItem(category))
}

func (h *StatCategoryHandler) DeleteStatCategory(c *gin.Context) {
	categoryID := parseIDParam(c, "id")
	if categoryID == 0 {
		return
	}

	if err := h.statCategoryService.Delete(c.Request.Context(), categoryID); err != nil {
		respondServiceError(c, err, "failed to delete stat category")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StatCategoryHandler) AddComponent(c *gin.Context) {
	categoryID := parseIDParam(c, "id")
	if categoryID == 0 {
		return
	}

	var req dto.CreateStatComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	component, err := h.statCategoryService.AddComponent(c.Request.Context(), categoryID, buildComponentInput(req))
	if err != nil {
		respondServiceError(c, err, "failed to add stat category component")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToStatCategoryComponentItem(component))
}

func (h *StatCategoryHandler) UpdateComponent(c *gin.Context) {
	componentID := parseIDParam(c, "componentId")
	if componentID == 0 {
		return
	}

	var req dto.UpdateStatComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	var metric *domain.StatMetric
	if req.Metric != nil {
		value := domain.StatMetric(*req.Metric)
		metric = &value
	}

	component, err := h.statCategoryService.UpdateComponent(c.Request.Context(), componentID, domain.UpdateComponentInput{
		TaskID:   req.TaskID,
		Metric:   metric,
		Weight:   req.Weight,
		Position: req.Position,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update stat category component")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatCategoryComponentItem(component))
}

func (h *StatCategoryHandler) DeleteComponent(c *gin.Context) {
	componentID := parseIDParam(c, "componentId")
	if componentID == 0 {
		return
	}

	if err := h.statCategoryService.DeleteComponent(c.Request.Context(), componentID); err != nil {
		respondServiceError(c, err, "failed to delete stat category component")
		return
	}

	c.Status(http.StatusNoContent)
}

func buildComponentInput(req dto.CreateStatComponentRequest) domain.CreateComponentInput {
	weight := 1.0
	if req.Weight != nil {
		weight = *req.Weight
	}

	return domain.CreateComponentInput{
		TaskID:   req.TaskID,
		Metric:   domain.StatMetric(req.Metric),
		Weight:   weight,
		Position: req.Position,
	}
}
