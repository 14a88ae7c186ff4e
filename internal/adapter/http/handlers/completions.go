package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/mapper"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
)

type CompletionHandler struct {
	completionService ports.CompletionService
}

func NewCompletionHandler(completionService ports.CompletionService) *CompletionHandler {
	return &CompletionHandler{completionService: completionService}
}

func (h *CompletionHandler) SubmitCompletion(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	var req dto.SubmitCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}

	completion, err := h.completionService.Submit(c.Request.Context(), middleware.GetActor(c), domain.SubmitInput{
		TaskID:     taskID,
		VariantID:  req.VariantID,
		Count:      count,
		MemberNote: req.MemberNote,
	})
	if err != nil {
		respondServiceError(c, err, "failed to submit completion")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCompletionItem(completion))
}

func (h *CompletionHandler) ListTaskSubmissions(c *gin.Context) {
	taskID := parseIDParam(c, "id")
	if taskID == 0 {
		return
	}

	completions, err := h.completionService.ListTaskSubmissions(c.Request.Context(), middleware.GetActor(c), taskID)
	if err != nil {
		respondServiceError(c, err, "failed to list task submissions")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCompletionItems(completions))
}

func (h *CompletionHandler) ListPending(c *gin.Context) {
	completions, err := h.completionService.ListPending(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondServiceError(c, err, "failed to list pending completions")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCompletionItems(completions))
}

func (h *CompletionHandler) ReviewCompletion(c *gin.Context) {
	completionID := parseIDParam(c, "id")
	if completionID == 0 {
		return
	}

	var req dto.ReviewCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	completion, err := h.completionService.Review(c.Request.Context(), middleware.GetActor(c), completionID, domain.ReviewInput{
		Status:    domain.CompletionStatus(req.Status),
		AdminNote: req.AdminNote,
	})
	if err != nil {
		respondServiceError(c, err, "failed to review completion")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCompletionItem(completion))
}

func (h *CompletionHandler) ListMyCompletions(c *gin.Context) {
	completions, err := h.completionService.ListMine(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondServiceError(c, err, "failed to list own completions")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCompletionItems(completions))
}

func (h *CompletionHandler) ListMemberCompletions(c *gin.Context) {
	memberID := parseIDParam(c, "memberId")
	if memberID == 0 {
		return
	}

	completions, err := h.completionService.ListForMember(c.Request.Context(), middleware.GetActor(c), memberID)
	if err != nil {
		respondServiceError(c, err, "failed to list member completions")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCompletionItems(completions))
}

func (h *CompletionHandler) AdminCreateCompletion(c *gin.Context) {
	memberID := parseIDParam(c, "memberId")
	if memberID == 0 {
		return
	}

	var req dto.AdminCreateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}

	status := domain.CompletionApproved
	if req.Status != nil {
		status = domain.CompletionStatus(*req.Status)
	}

	completion, err := h.completionService.AdminCreate(c.Request.Context(), middleware.GetActor(c), memberID, domain.AdminCreateCompletionInput{
		TaskID:     req.TaskID,
		VariantID:  req.VariantID,
		Count:      count,
		Status:     status,
		MemberNote: req.MemberNote,
		AdminNote:  req.AdminNote,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create completion")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCompletionItem(completion))
}

func (h *CompletionHandler) AdminUpdateCompletion(c *gin.Context) {
	memberID := parseIDParam(c, "memberId")
	if memberID == 0 {
		return
	}
	completionID := parseIDParam(c, "completionId")
	if completionID == 0 {
		return
	}

	var req dto.AdminUpdateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	var status *domain.CompletionStatus
	if req.Status != nil {
		value := domain.CompletionStatus(*req.Status)
		status = &value
	}

	completion, err := h.completionService.AdminUpdate(c.Request.Context(), middleware.GetActor(c), memberID, completionID, domain.AdminUpdateCompletionInput{
		Count:     req.Count,
		Status:    status,
		AdminNote: req.AdminNote,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update completion")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCompletionItem(completion))
}

func (h *CompletionHandler) AdminDeleteCompletion(c *gin.Context) {
	memberID := parseIDParam(c, "memberId")
	if memberID == 0 {
		return
	}
	completionID := parseIDParam(c, "completionId")
	if completionID == 0 {
		return
	}

	if err := h.completionService.AdminDelete(c.Request.Context(), middleware.GetActor(c), memberID, completionID); err != nil {
		respondServiceError(c, err, "failed to delete completion")
		return
	}

	c.Status(http.StatusNoContent)
}
