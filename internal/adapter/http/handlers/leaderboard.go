package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/mapper"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
)

type LeaderboardHandler struct {
	leaderboardService ports.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService ports.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (h *LeaderboardHandler) MemberLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.Members(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to build member leaderboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToLeaderboardEntryItems(entries))
}

func (h *LeaderboardHandler) TeamLeaderboard(c *gin.Context) {
	mode := domain.TeamScoreTotal
	if value := c.Query("mode"); value != "" {
		mode = domain.TeamScoreMode(value)
		if mode != domain.TeamScoreTotal && mode != domain.TeamScoreAverage {
			respondBadRequest(c, apierrors.MsgInvalidPayload)
			return
		}
	}

	entries, err := h.leaderboardService.Teams(c.Request.Context(), mode)
	if err != nil {
		respondServiceError(c, err, "failed to build team leaderboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToLeaderboardEntryItems(entries))
}

func (h *LeaderboardHandler) TeamMemberLeaderboard(c *gin.Context) {
	teamID := parseIDParam(c, "id")
	if teamID == 0 {
		return
	}

	entries, err := h.leaderboardService.TeamMembers(c.Request.Context(), teamID)
	if err != nil {
		respondServiceError(c, err, "failed to build team member leaderboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToLeaderboardEntryItems(entries))
}

func (h *LeaderboardHandler) StatsCategoryLeaderboard(c *gin.Context) {
	categoryID := parseIDParam(c, "id")
	if categoryID == 0 {
		return
	}

	scope := domain.ScopeMembers
	if value := c.Query("scope"); value != "" {
		scope = domain.LeaderboardScope(value)
		if scope != domain.ScopeMembers && scope != domain.ScopeTeams {
			respondBadRequest(c, apierrors.MsgInvalidPayload)
			return
		}
	}

	limit := 0
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			respondBadRequest(c, apierrors.MsgInvalidPayload)
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardService.StatsCategory(c.Request.Context(), categoryID, scope, limit)
	if err != nil {
		respondServiceError(c, err, "failed to build stats category leaderboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToLeaderboardEntryItems(entries))
}

func (h *LeaderboardHandler) MyScore(c *gin.Context) {
	summary, err := h.leaderboardService.MyScore(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondServiceError(c, err, "failed to compute score summary")
		return
	}

	c.JSON(http.StatusOK, mapper.ToScoreSummaryItem(summary))
}

func (h *LeaderboardHandler) MemberTaskBreakdown(c *gin.Context) {
	memberID := parseIDParam(c, "memberId")
	if memberID == 0 {
		return
	}

	rows, err := h.leaderboardService.TaskBreakdown(c.Request.Context(), memberID)
	if err != nil {
		respondServiceError(c, err, "failed to compute task breakdown")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskBreakdownItems(rows))
}

func (h *LeaderboardHandler) TeamActivity(c *gin.Context) {
	activity, err := h.leaderboardService.TeamActivity(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondServiceError(c, err, "failed to load team activity")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamActivityItem(activity))
}
